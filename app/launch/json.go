package launch

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

var null = []byte("null")

// Text is a string field that also accepts numbers and booleans. Objects,
// arrays and null decode to "".
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, null) {
		*t = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*t = ""
			return nil
		}
		*t = Text(strings.TrimSpace(s))
	case '{', '[':
		*t = ""
	default:
		*t = Text(data)
	}
	return nil
}

func (t Text) String() string {
	return string(t)
}

// Label is a Text that also accepts the {"id": ..., "name": ...} object form
// newer API versions use for type and status fields.
type Label string

func (l *Label) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*l = ""

	if len(data) > 0 && data[0] == '{' {
		var named struct {
			Name Text `json:"name"`
		}
		if err := json.Unmarshal(data, &named); err == nil {
			*l = Label(named.Name)
		}
		return nil
	}

	var t Text
	_ = t.UnmarshalJSON(data)
	*l = Label(t)
	return nil
}

func (l Label) String() string {
	return string(l)
}

// Bool is a nullable boolean that also accepts "true", "false", 0 and 1.
type Bool struct {
	Value bool
	Valid bool
}

func (b *Bool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	v, err := strconv.ParseBool(s)
	*b = Bool{Value: v, Valid: err == nil}
	return nil
}

func (b Bool) Ptr() *bool {
	if !b.Valid {
		return nil
	}
	v := b.Value
	return &v
}

// True reports whether the value is present and true.
func (b Bool) True() bool {
	return b.Valid && b.Value
}

func NewBool(v bool) Bool {
	return Bool{Value: v, Valid: true}
}

// Float is a nullable number that also accepts numeric strings ("70",
// "1,420.5"). Anything unparseable is left invalid.
type Float struct {
	Value float64
	Valid bool
}

func (f *Float) UnmarshalJSON(data []byte) error {
	v, ok := parseNumber(data)
	*f = Float{Value: v, Valid: ok}
	return nil
}

// Ptr returns nil when the value is absent.
func (f Float) Ptr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

func NewFloat(v float64) Float {
	return Float{Value: v, Valid: !math.IsNaN(v)}
}

// Int is the integer counterpart of Float.
type Int struct {
	Value int
	Valid bool
}

func (i *Int) UnmarshalJSON(data []byte) error {
	v, ok := parseNumber(data)
	if !ok || v != math.Trunc(v) {
		*i = Int{}
		return nil
	}
	*i = Int{Value: int(v), Valid: true}
	return nil
}

func (i Int) Ptr() *int {
	if !i.Valid {
		return nil
	}
	v := i.Value
	return &v
}

// Or returns the value, or def when absent.
func (i Int) Or(def int) int {
	if !i.Valid {
		return def
	}
	return i.Value
}

func NewInt(v int) Int {
	return Int{Value: v, Valid: true}
}

func parseNumber(data []byte) (float64, bool) {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return 0, false
	}
	s = strings.Trim(s, `"`)
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// VideoURL accepts both the object form of vidURLs and the bare string form
// some endpoints use for mission.vid_urls.
type VideoURL struct {
	Priority     Int  `json:"priority"`
	Title        Text `json:"title"`
	Description  Text `json:"description"`
	FeatureImage Text `json:"feature_image"`
	URL          Text `json:"url"`
}

func (v *VideoURL) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*v = VideoURL{}

	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			v.URL = Text(strings.TrimSpace(s))
		}
	case '{':
		type plain VideoURL
		var p plain
		if err := json.Unmarshal(data, &p); err == nil {
			*v = VideoURL(p)
		}
	}
	return nil
}

// SpacecraftStages accepts spacecraft_stage as a single object (2.2.0) or as
// an array (2.3.0).
type SpacecraftStages []SpacecraftStage

func (s *SpacecraftStages) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*s = nil

	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '{':
		var stage SpacecraftStage
		if err := json.Unmarshal(data, &stage); err == nil {
			*s = SpacecraftStages{stage}
		}
	case '[':
		var stages []SpacecraftStage
		if err := json.Unmarshal(data, &stages); err == nil && len(stages) > 0 {
			*s = stages
		}
	}
	return nil
}

func (s *Status) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*s = Status{}

	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '{':
		type plain Status
		var p plain
		if err := json.Unmarshal(data, &p); err == nil {
			*s = Status(p)
		}
	case '"':
		_ = s.Name.UnmarshalJSON(data)
	}
	return nil
}

// Decode parses an upcoming-launches payload. A payload without a results
// array yields an empty list. Each launch decodes on its own: one that cannot
// be decoded is logged and skipped so the rest of the page survives.
func Decode(data []byte) ([]Mission, error) {
	var response struct {
		Results []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, err
	}

	missions := make([]Mission, 0, len(response.Results))
	for i, raw := range response.Results {
		var m Mission
		if err := json.Unmarshal(raw, &m); err != nil {
			slog.Warn("Skipping undecodable launch", "index", i, "error", err)
			continue
		}
		missions = append(missions, m)
	}
	return missions, nil
}
