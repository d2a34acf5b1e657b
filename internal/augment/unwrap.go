package augment

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UnwrapJSON strips an optional Markdown code-fence envelope from a model
// response and verifies the remainder is valid JSON. Models frequently wrap
// structured output in ```json fences even when told not to; anything that
// does not unwrap to valid JSON is a parse failure for the retry policy.
func UnwrapJSON(content string) (json.RawMessage, error) {
	s := strings.TrimSpace(content)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}

	if !json.Valid([]byte(s)) {
		return nil, fmt.Errorf("response is not valid JSON after unwrapping")
	}
	return json.RawMessage(s), nil
}
