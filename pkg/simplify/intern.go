package simplify

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// interner deduplicates style values within one conversion run. Values
// are keyed by category plus canonical JSON, so structurally equal
// values of the same category share an id while equal values of
// different categories never do.
type interner struct {
	styles map[StyleID]any
	index  map[string]StyleID
}

func newInterner() *interner {
	return &interner{
		styles: make(map[StyleID]any),
		index:  make(map[string]StyleID),
	}
}

// intern returns the id for value, minting one on first sight.
func (in *interner) intern(category string, value any) (StyleID, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("encode %s style: %w", category, err)
	}

	key := category + ":" + string(raw)
	if id, ok := in.index[key]; ok {
		return id, nil
	}

	id := in.newID(category)
	in.index[key] = id
	in.styles[id] = value
	return id, nil
}

// newID mints a category-prefixed random id, re-rolling on collision.
func (in *interner) newID(category string) StyleID {
	for {
		token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
		id := StyleID(category + "_" + token)
		if _, taken := in.styles[id]; !taken {
			return id
		}
	}
}

func (in *interner) globalVars() GlobalVars {
	return GlobalVars{Styles: in.styles}
}
