package types

import (
	"encoding/json"
)

// Ref is a reference to another record. Clients send reference fields either
// as a bare id string or as a nested object carrying an "id" field; both
// decode to the id.
type Ref string

// UnmarshalJSON implements the json.Unmarshaler interface.
func (r *Ref) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = Ref(id)
		return nil
	}

	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*r = Ref(obj.ID)
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

// String returns the referenced id.
func (r Ref) String() string {
	return string(r)
}

// RefList is a list of references. Like FlexList, it accepts a single item
// where an array is expected; each element may be a bare id or a nested
// object.
type RefList []Ref

// UnmarshalJSON implements the json.Unmarshaler interface.
func (l *RefList) UnmarshalJSON(data []byte) error {
	var flex FlexList[Ref]
	if err := flex.UnmarshalJSON(data); err != nil {
		return err
	}
	*l = RefList(flex.Slice())
	return nil
}

// IDs converts the list to the flat id slice stored on entities.
func (l RefList) IDs() []string {
	ids := make([]string, 0, len(l))
	for _, r := range l {
		if r != "" {
			ids = append(ids, string(r))
		}
	}
	return ids
}
