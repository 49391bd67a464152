package seatmap

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrMalformedPayload marks raw cabin data that matches none of the
// supported shapes. The caller serves the fallback grid in response.
var ErrMalformedPayload = errors.New("seatmap: payload matches no supported cabin shape")

// physicalLetterOrder is the fixed cabin letter table; "I" is
// conventionally skipped by airlines.
const physicalLetterOrder = "ABCDEFGHJK"

// aisleSplits maps known aircraft widths to zero-based column indices after
// which an aisle gap is inserted. Other widths have no defined placement
// and are flagged as an unknown layout rather than guessed.
var aisleSplits = map[int][]int{
	6:  {2},
	9:  {2, 5},
	10: {2, 6},
}

// Normalize converts one raw cabin payload into the canonical CabinLayout.
// Deterministic: the same payload always yields a structurally identical
// layout.
func Normalize(cabin *RawCabin, class CabinClass, currency string) (*CabinLayout, error) {
	if cabin == nil || !cabin.hasShape() {
		return nil, ErrMalformedPayload
	}

	columns, columnTags := discoverColumns(cabin)
	if len(columns) == 0 {
		return nil, ErrMalformedPayload
	}
	sortColumns(columns)

	splits, splitsKnown := aisleSplits[len(columns)]
	inferPositionTags(columns, splits, columnTags)

	rows, err := materializeRows(cabin)
	if err != nil {
		return nil, err
	}

	layout := &CabinLayout{
		CabinClass:  class,
		Columns:     columns,
		Slots:       buildSlots(columns, splits),
		AisleLayout: AisleLayoutUnknown,
		Seats:       make(map[string]*SeatRecord, len(rows)*len(columns)),
	}
	if splitsKnown {
		layout.AisleLayout = AisleLayoutKnown
	}

	for _, row := range rows {
		layout.RowIDs = append(layout.RowIDs, row.id)
		if row.exit {
			layout.ExitRows = append(layout.ExitRows, row.id)
		}

		for _, col := range columns {
			seat := buildSeat(row, col, columnTags[col], class, currency)
			layout.Seats[seat.ID] = seat

			if seat.Selectable && seat.Price != nil {
				if layout.MinPrice == nil || seat.Price.Less(*layout.MinPrice) {
					price := *seat.Price
					layout.MinPrice = &price
				}
			}
		}
	}

	return layout, nil
}

// discoverColumns unions the column identifiers from all three raw shapes,
// in priority order, dropping explicit gap markers.
func discoverColumns(cabin *RawCabin) ([]string, map[string][]SeatTag) {
	seen := make(map[string]bool)
	tags := make(map[string][]SeatTag)
	var columns []string

	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		columns = append(columns, id)
	}

	for i := range cabin.Columns {
		col := &cabin.Columns[i]
		if col.IsGapMarker() {
			continue
		}
		add(col.ID)
		for _, d := range col.Description {
			if tag, ok := parseTag(d); ok {
				tags[col.ID] = appendTag(tags[col.ID], tag)
			}
		}
	}

	for i := range cabin.Rows {
		for j := range cabin.Rows[i].Seats {
			add(cabin.Rows[i].Seats[j].ColumnID())
		}
	}

	for i := range cabin.Seats {
		add(cabin.Seats[i].ColumnID())
	}

	return columns, tags
}

// sortColumns orders identifiers: the fixed physical letter table when all
// are single letters, numeric ascending when all are digits, lexical last.
func sortColumns(columns []string) {
	allLetters := true
	allNumeric := true
	for _, c := range columns {
		if len(c) != 1 || c[0] < 'A' || c[0] > 'Z' {
			allLetters = false
		}
		if _, err := strconv.Atoi(c); err != nil {
			allNumeric = false
		}
	}

	switch {
	case allLetters && len(columns) > 0:
		sort.Slice(columns, func(i, j int) bool {
			return letterRank(columns[i]) < letterRank(columns[j])
		})
	case allNumeric && len(columns) > 0:
		sort.Slice(columns, func(i, j int) bool {
			a, _ := strconv.Atoi(columns[i])
			b, _ := strconv.Atoi(columns[j])
			return a < b
		})
	default:
		sort.Strings(columns)
	}
}

// letterRank positions a letter by the physical table; letters outside it
// sort after, by value.
func letterRank(column string) int {
	if idx := strings.Index(physicalLetterOrder, column); idx >= 0 {
		return idx
	}
	return len(physicalLetterOrder) + int(column[0])
}

// buildSlots interleaves the sorted columns with synthetic gap slots at the
// known split indices.
func buildSlots(columns []string, splits []int) []Slot {
	slots := make([]Slot, 0, len(columns)+len(splits))
	for i, col := range columns {
		slots = append(slots, Slot{Type: SlotColumn, Column: col})
		for _, split := range splits {
			if i == split {
				slots = append(slots, Slot{Type: SlotGap})
			}
		}
	}
	return slots
}

// inferPositionTags layers WINDOW/AISLE heuristics on top of explicit raw
// tags, never overriding them.
func inferPositionTags(columns []string, splits []int, tags map[string][]SeatTag) {
	if len(columns) == 0 {
		return
	}

	tags[columns[0]] = appendTag(tags[columns[0]], TagWindow)
	tags[columns[len(columns)-1]] = appendTag(tags[columns[len(columns)-1]], TagWindow)

	for _, split := range splits {
		if split >= 0 && split < len(columns) {
			tags[columns[split]] = appendTag(tags[columns[split]], TagAisle)
		}
		if split+1 < len(columns) {
			tags[columns[split+1]] = appendTag(tags[columns[split+1]], TagAisle)
		}
	}
}

func appendTag(tags []SeatTag, tag SeatTag) []SeatTag {
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}
	return append(tags, tag)
}

// parseTag maps a raw descriptor string onto a known seat tag.
func parseTag(descriptor string) (SeatTag, bool) {
	d := strings.ToUpper(strings.TrimSpace(descriptor))
	switch {
	case strings.Contains(d, "WINDOW"):
		return TagWindow, true
	case strings.Contains(d, "AISLE"):
		return TagAisle, true
	case isExitDescriptor(d):
		return TagExit, true
	case isBulkheadDescriptor(d):
		return TagBulkhead, true
	}
	return "", false
}

func isBulkheadDescriptor(d string) bool {
	return strings.Contains(d, "BULKHEAD") ||
		strings.Contains(d, "BASSINET") ||
		strings.Contains(d, "PARTITION")
}

func isExitDescriptor(d string) bool {
	return strings.Contains(d, "EXIT") ||
		strings.Contains(d, "EMERGENCY") ||
		strings.Contains(d, "OVERWING") ||
		strings.Contains(d, "DOOR")
}

// materializedRow is an intermediate row with its seats keyed by column.
type materializedRow struct {
	id       int
	bulkhead bool
	exit     bool
	seats    map[string]*RawSeat
}

// materializeRows resolves the two row shapes. Rows with non-positive or
// non-finite ids are discarded entirely (sentinel values like -1).
func materializeRows(cabin *RawCabin) ([]materializedRow, error) {
	byID := make(map[int]*materializedRow)

	if len(cabin.Rows) > 0 {
		for i := range cabin.Rows {
			raw := &cabin.Rows[i]
			id, ok := validRowID(raw.ID)
			if !ok {
				continue
			}

			row := rowFor(byID, id)
			for _, d := range raw.Description {
				upper := strings.ToUpper(strings.TrimSpace(d))
				if isBulkheadDescriptor(upper) {
					row.bulkhead = true
				}
				if isExitDescriptor(upper) {
					row.exit = true
				}
			}
			for j := range raw.Seats {
				seat := &raw.Seats[j]
				if col := seat.ColumnID(); col != "" {
					row.seats[col] = seat
				}
			}
		}
	} else {
		for i := range cabin.Seats {
			seat := &cabin.Seats[i]
			id, ok := validRowID(seat.Row)
			if !ok {
				continue
			}
			if col := seat.ColumnID(); col != "" {
				rowFor(byID, id).seats[col] = seat
			}
		}
	}

	if len(byID) == 0 {
		return nil, ErrMalformedPayload
	}

	rows := make([]materializedRow, 0, len(byID))
	for _, row := range byID {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].id < rows[j].id })

	return rows, nil
}

func rowFor(byID map[int]*materializedRow, id int) *materializedRow {
	row, ok := byID[id]
	if !ok {
		row = &materializedRow{id: id, seats: make(map[string]*RawSeat)}
		byID[id] = row
	}
	return row
}

// validRowID accepts only finite, positive, integral row ids.
func validRowID(raw *float64) (int, bool) {
	if raw == nil {
		return 0, false
	}
	v := *raw
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}

// buildSeat materializes the record for one (row, column) position. A
// missing raw seat yields a blocked record, never a missing map entry.
func buildSeat(row materializedRow, column string, columnTags []SeatTag, class CabinClass, currency string) *SeatRecord {
	record := &SeatRecord{
		ID:     SeatID(row.id, column),
		Row:    row.id,
		Column: column,
	}

	for _, tag := range columnTags {
		record.Tags = appendTag(record.Tags, tag)
	}
	if row.bulkhead {
		record.Tags = appendTag(record.Tags, TagBulkhead)
	}
	if row.exit {
		record.Tags = appendTag(record.Tags, TagExit)
	}
	sortTags(record.Tags)

	raw, ok := row.seats[column]
	if !ok {
		return record // blocked: exists=false, selectable=false
	}

	record.Exists = true
	record.RawAvailable = resolveAvailability(raw)
	record.Price = resolvePrice(raw, currency)

	for _, d := range raw.Description {
		if tag, tagged := parseTag(d); tagged {
			record.Tags = appendTag(record.Tags, tag)
		}
	}
	sortTags(record.Tags)

	isBulkhead := row.bulkhead || record.HasTag(TagBulkhead)
	record.Selectable = IsSelectable(record.RawAvailable, record.Price != nil, class, isBulkhead)

	return record
}

func sortTags(tags []SeatTag) {
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
}
