package wakatime

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/wakatime/internal/domain"
)

// envelope is the top-level shape of every API response.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// dayList decodes the summaries "data" field, which is a single day object
// for some queries and an array of days for others.
type dayList []domain.DaySummary

func (d *dayList) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*d = dayList{}
		return nil
	case trimmed[0] == '{':
		var one domain.DaySummary
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return err
		}
		*d = dayList{one}
		return nil
	default:
		var many []domain.DaySummary
		if err := json.Unmarshal(trimmed, &many); err != nil {
			return err
		}
		if many == nil {
			many = []domain.DaySummary{}
		}
		*d = many
		return nil
	}
}

// decodeData unwraps the envelope and decodes its data field into out.
func decodeData(body []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if len(env.Data) == 0 {
		return fmt.Errorf("%w: missing data field", ErrInvalidResponse)
	}
	if bytes.Equal(bytes.TrimSpace(env.Data), []byte("null")) {
		return fmt.Errorf("%w: null data field", ErrInvalidResponse)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}
