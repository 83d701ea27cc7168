package character

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidID is returned when an id is neither a JSON string nor a JSON number.
	ErrInvalidID = errors.New("character id must be a string or a number")
	// ErrInvalidText is returned when a display field is an object or an array.
	ErrInvalidText = errors.New("character field must be a JSON scalar")
)

// ID is an opaque character identifier.
// Numeric ids keep their literal JSON text, so 1 decodes to "1".
type ID string

// String returns the id as a plain string.
func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON accepts both string and numeric ids.
func (id *ID) UnmarshalJSON(data []byte) error {
	text, err := decodeScalar(data, false)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, string(data))
	}
	*id = ID(text)
	return nil
}

// Text is a display string that the API may send as a string, number or
// boolean. Non-string scalars keep their literal JSON text.
type Text string

// UnmarshalJSON accepts any JSON scalar.
func (t *Text) UnmarshalJSON(data []byte) error {
	text, err := decodeScalar(data, true)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidText, string(data))
	}
	*t = Text(text)
	return nil
}

// decodeScalar returns the text of a JSON string, number, null or, when
// allowBool is set, boolean.
func decodeScalar(data []byte, allowBool bool) (string, error) {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return "", nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	case bytes.Equal(data, []byte("true")) || bytes.Equal(data, []byte("false")):
		if !allowBool {
			return "", errors.New("boolean")
		}
		return string(data), nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return "", err
	}
	return n.String(), nil
}

// Summary is the abbreviated record shown in the character listing.
type Summary struct {
	ID   ID     `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
	// Img is the remote image reference.
	Img string `json:"img" yaml:"img"`
}

// Detail is the full record shown on the detail screen.
type Detail struct {
	Summary `yaml:",inline"`

	Age         string `json:"age"         yaml:"age"`
	Race        string `json:"race"        yaml:"race"`
	Gender      string `json:"gender"      yaml:"gender"`
	Description string `json:"description" yaml:"description"`
	Quote       string `json:"quote"       yaml:"quote"`
}

// UnmarshalJSON decodes a detail, tolerating numeric or boolean display fields.
func (d *Detail) UnmarshalJSON(data []byte) error {
	var raw struct {
		Summary
		Age         Text `json:"age"`
		Race        Text `json:"race"`
		Gender      Text `json:"gender"`
		Description Text `json:"description"`
		Quote       Text `json:"quote"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = Detail{
		Summary:     raw.Summary,
		Age:         string(raw.Age),
		Race:        string(raw.Race),
		Gender:      string(raw.Gender),
		Description: string(raw.Description),
		Quote:       string(raw.Quote),
	}
	return nil
}

// Theme returns the visual theme selected by the character's race.
func (d Detail) Theme() Theme {
	return SelectTheme(d.Race)
}
