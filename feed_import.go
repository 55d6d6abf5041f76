package fundpool

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// ImportFeedPoints extracts validated valuation points from an
// already-downloaded broker JSON export.
//
// Brokers disagree wildly on export shapes, so instead of one parser per
// broker the caller supplies two jsonpath expressions selecting the list of
// dates and the list of matching total values. This is format adaptation at
// the boundary only: no fetching, no currency conversion, and no row
// deduplication beyond one value per date.
func ImportFeedPoints(r io.Reader, datePath, valuePath string) ([]ValuationPoint, error) {
	var jobj any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse broker export: %w", err)
	}

	dates, err := jsonpathList(jobj, datePath)
	if err != nil {
		return nil, fmt.Errorf("cannot extract dates: %w", err)
	}
	values, err := jsonpathList(jobj, valuePath)
	if err != nil {
		return nil, fmt.Errorf("cannot extract values: %w", err)
	}
	if len(dates) != len(values) {
		return nil, fmt.Errorf("mismatched extraction: %d dates but %d values", len(dates), len(values))
	}

	points := make([]ValuationPoint, 0, len(dates))
	for i, jdate := range dates {
		str, ok := jdate.(string)
		if !ok {
			return nil, fmt.Errorf("date %d is not a string: %v", i, jdate)
		}
		on, err := ParseDate(str)
		if err != nil {
			return nil, fmt.Errorf("date %d: %w", i, err)
		}
		value, err := jsonNumber(values[i])
		if err != nil {
			return nil, fmt.Errorf("value for %s: %w", on, err)
		}
		point, err := NewValuationPoint(on, value)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}

// jsonpathList evaluates a jsonpath expression and always returns a list.
// jsonpath is never clear about whether it returns a list of answers or a
// single answer; a single answer is wrapped.
func jsonpathList(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("jsonpath %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok {
		return jlist, nil
	}
	return []any{jval}, nil
}

// jsonNumber reads a broker value that may come as a number or as a decimal
// string, sometimes with a comma decimal separator.
func jsonNumber(jval any) (decimal.Decimal, error) {
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		s := strings.ReplaceAll(strings.ReplaceAll(v, ",", "."), " ", "")
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("invalid number %q: %w", v, err)
		}
		return d, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("not a number: %v", jval)
	}
}
