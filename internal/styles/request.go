package styles

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/themekit/internal/theme"
)

// Kind names a stylable component.
type Kind string

const (
	KindButton  Kind = "button"
	KindCard    Kind = "card"
	KindInput   Kind = "input"
	KindHeader  Kind = "header"
	KindSpinner Kind = "spinner"
)

// Kinds lists every stylable component kind.
var Kinds = []Kind{KindButton, KindCard, KindInput, KindHeader, KindSpinner}

// ParseKind returns the kind named by value.
func ParseKind(value string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range Kinds {
		if kind == known {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown component kind %q", value)
}

// Request is a style request for any component kind. Variant and Size are
// interpreted by the kind's mapper.
type Request struct {
	Kind    Kind
	Variant string
	Size    Size
	State   State
}

// Resolve dispatches a request to the mapper for its kind.
func Resolve(th *theme.Theme, req Request) (ResolvedStyle, error) {
	switch req.Kind {
	case KindButton:
		return Button(th, ButtonOptions{Variant: ButtonVariant(req.Variant), Size: req.Size, State: req.State}), nil
	case KindCard:
		return Card(th, CardOptions{Variant: CardVariant(req.Variant), Size: req.Size, State: req.State}), nil
	case KindInput:
		return Input(th, InputOptions{Variant: InputVariant(req.Variant), Size: req.Size, State: req.State}), nil
	case KindHeader:
		return Header(th, HeaderOptions{Variant: HeaderVariant(req.Variant)}), nil
	case KindSpinner:
		return Spinner(th, SpinnerOptions{Size: req.Size}), nil
	default:
		return ResolvedStyle{}, fmt.Errorf("unknown component kind %q", req.Kind)
	}
}
