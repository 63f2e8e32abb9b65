package packet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrChatDecode = errors.New("malformed chat component")

// DefaultMaxChatLen bounds the JSON text of a chat component.
const DefaultMaxChatLen = 262144

// Chat is a JSON text component. Styling flags are pointers so that an
// unset flag inherits from the parent instead of being forced off.
type Chat struct {
	Text      string `json:"text"`
	Translate string `json:"translate,omitempty"`
	With      []Chat `json:"with,omitempty"`

	Color         string `json:"color,omitempty"`
	Bold          *bool  `json:"bold,omitempty"`
	Italic        *bool  `json:"italic,omitempty"`
	Underlined    *bool  `json:"underlined,omitempty"`
	Strikethrough *bool  `json:"strikethrough,omitempty"`
	Obfuscated    *bool  `json:"obfuscated,omitempty"`
	Font          string `json:"font,omitempty"`
	Insertion     string `json:"insertion,omitempty"`

	ClickEvent *ClickEvent `json:"clickEvent,omitempty"`
	HoverEvent *HoverEvent `json:"hoverEvent,omitempty"`

	Extra []Chat `json:"extra,omitempty"`
}

type ClickEvent struct {
	Action string `json:"action"`
	Value  string `json:"value"`
}

type HoverEvent struct {
	Action   string          `json:"action"`
	Contents json.RawMessage `json:"contents,omitempty"`
}

// Text returns a plain, unstyled component.
func Text(s string) Chat {
	return Chat{Text: s}
}

// Append adds children to the component and returns it.
func (c Chat) Append(children ...Chat) Chat {
	c.Extra = append(c.Extra, children...)
	return c
}

// String flattens the component tree into its visible text. Translation
// keys are emitted as-is.
func (c Chat) String() string {
	var sb strings.Builder
	c.flatten(&sb)
	return sb.String()
}

func (c Chat) flatten(sb *strings.Builder) {
	if c.Text == "" && c.Translate != "" {
		sb.WriteString(c.Translate)
	} else {
		sb.WriteString(c.Text)
	}
	for _, e := range c.Extra {
		e.flatten(sb)
	}
}

// chatObject has Chat's fields without its UnmarshalJSON method.
type chatObject Chat

// UnmarshalJSON accepts the three shapes a component may take on the wire:
// a bare string, an object, or an array whose first element is the parent
// and the rest are its children.
func (c *Chat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrChatDecode
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Text(s)
		return nil
	case '[':
		var parts []Chat
		if err := json.Unmarshal(data, &parts); err != nil {
			return err
		}
		if len(parts) == 0 {
			return fmt.Errorf("%w: empty component array", ErrChatDecode)
		}
		*c = parts[0].Append(parts[1:]...)
		return nil
	case '{':
		var o chatObject
		if err := json.Unmarshal(data, &o); err != nil {
			return err
		}
		*c = Chat(o)
		return nil
	}

	return fmt.Errorf("%w: unexpected %q", ErrChatDecode, data[0])
}

// WriteChat writes the compact JSON encoding of v as a String.
func WriteChat(w io.Writer, v Chat) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return WriteString(w, string(b))
}

func ReadChat(r *Buffer) (v Chat, err error) {
	s, err := ReadStringMax(r, DefaultMaxChatLen)
	if err != nil {
		return
	}
	if err = json.Unmarshal([]byte(s), &v); err != nil {
		if !errors.Is(err, ErrChatDecode) {
			err = fmt.Errorf("%w: %v", ErrChatDecode, err)
		}
	}
	return
}

// WriteJSON writes the JSON encoding of v as a String, as used by the
// status response.
func WriteJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return WriteString(w, string(b))
}

func ReadJSON(r *Buffer, v any) error {
	s, err := ReadString(r)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(s), v)
}
