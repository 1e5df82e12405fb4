package nbastats

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/hoopstats/internal/domain/stat"
)

type wireResultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// envelope covers both response shapes: most endpoints return a
// resultSets array, a few a single resultSet object.
type envelope struct {
	Resource   string          `json:"resource"`
	ResultSets []wireResultSet `json:"resultSets"`
	ResultSet  *wireResultSet  `json:"resultSet"`
}

func (e envelope) response() Response {
	sets := make([]ResultSet, 0, len(e.ResultSets)+1)
	for _, rs := range e.ResultSets {
		sets = append(sets, newResultSet(rs))
	}
	if e.ResultSet != nil {
		sets = append(sets, newResultSet(*e.ResultSet))
	}
	return Response{Resource: e.Resource, Sets: sets}
}

// Response is a decoded endpoint payload.
type Response struct {
	Resource string
	Sets     []ResultSet
}

// Set returns the result set called name. An empty name selects the first set.
func (r Response) Set(name string) (ResultSet, bool) {
	for _, rs := range r.Sets {
		if strings.EqualFold(rs.Name, name) {
			return rs, true
		}
	}
	if len(r.Sets) > 0 && name == "" {
		return r.Sets[0], true
	}
	return ResultSet{}, false
}

// ResultSet is one named table. Column lookups are case-insensitive since
// the provider mixes Game_ID and GAME_ID across endpoints.
type ResultSet struct {
	Name    string
	Headers []string
	rows    [][]any
	index   map[string]int
}

func newResultSet(w wireResultSet) ResultSet {
	index := make(map[string]int, len(w.Headers))
	for i, h := range w.Headers {
		index[strings.ToUpper(h)] = i
	}
	return ResultSet{Name: w.Name, Headers: w.Headers, rows: w.RowSet, index: index}
}

func (rs ResultSet) Len() int {
	return len(rs.rows)
}

func (rs ResultSet) Rows() []Row {
	out := make([]Row, 0, len(rs.rows))
	for _, values := range rs.rows {
		out = append(out, Row{set: &rs, values: values})
	}
	return out
}

// Row is a single provider row with typed column accessors. Missing or
// null cells yield zero values.
type Row struct {
	set    *ResultSet
	values []any
}

func (r Row) value(column string) (any, bool) {
	i, ok := r.set.index[strings.ToUpper(column)]
	if !ok || i >= len(r.values) {
		return nil, false
	}
	v := r.values[i]
	return v, v != nil
}

func (r Row) String(column string) string {
	v, ok := r.value(column)
	if !ok {
		return ""
	}
	switch typed := v.(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return ""
	}
}

func (r Row) Float(column string) (float64, bool) {
	v, ok := r.value(column)
	if !ok {
		return 0, false
	}
	switch typed := v.(type) {
	case float64:
		return typed, true
	case int64:
		return float64(typed), true
	case int:
		return float64(typed), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func (r Row) Int64(column string) int64 {
	v, _ := r.Float(column)
	return int64(math.Round(v))
}

func (r Row) Int(column string) int {
	return int(r.Int64(column))
}

func (r Row) Bool(column string) bool {
	v, ok := r.value(column)
	if !ok {
		return false
	}
	switch typed := v.(type) {
	case bool:
		return typed
	case float64:
		return typed != 0
	case string:
		s := strings.ToUpper(strings.TrimSpace(typed))
		return s == "Y" || s == "1" || s == "TRUE" || s == "ACTIVE"
	default:
		return false
	}
}

// Date parses the column using the date layouts the provider emits.
func (r Row) Date(column string) time.Time {
	raw := r.String(column)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

var dateLayouts = []string{
	"Jan 02, 2006",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
	"20060102",
}

// Stats collects every numeric cell into a stat line keyed by the upper-case
// column name.
func (r Row) Stats() stat.Line {
	out := make(stat.Line, len(r.values))
	for i, h := range r.set.Headers {
		if i >= len(r.values) {
			break
		}
		if v, ok := r.values[i].(float64); ok {
			out[strings.ToUpper(h)] = v
		}
	}
	return out
}
