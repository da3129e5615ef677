package naming

import (
	"errors"
	"fmt"
	"strings"
)

// ModelName is one canonical image-generation model label.
type ModelName string

const (
	ModelByteDance     ModelName = "ByteDance"
	ModelChatGPT       ModelName = "ChatGPT"
	ModelFlux          ModelName = "Flux"
	ModelGrok          ModelName = "Grok"
	ModelIdeogram      ModelName = "Ideogram"
	ModelLeonardo      ModelName = "Leonardo"
	ModelMidjourney    ModelName = "Midjourney"
	ModelNanoBananaPro ModelName = "NanoBananaPro"
	ModelQwen          ModelName = "Qwen"
	ModelReve          ModelName = "Reve"
)

// allowedModels is the closed whitelist. Keys are pairwise distinct after
// [CanonicalKey], so at most one entry can match a given raw name.
var allowedModels = [...]ModelName{
	ModelByteDance,
	ModelChatGPT,
	ModelFlux,
	ModelGrok,
	ModelIdeogram,
	ModelLeonardo,
	ModelMidjourney,
	ModelNanoBananaPro,
	ModelQwen,
	ModelReve,
}

// nanoBananaAlias is the reduced prefix shared by every "Nano Banana"
// variant. Anything starting with it collapses to ModelNanoBananaPro.
const nanoBananaAlias = "nanobanana"

// ErrUnknownModel is matched by every *UnknownModelError via errors.Is.
var ErrUnknownModel = errors.New("unrecognized model name")

// UnknownModelError reports a raw directory name that maps to no model.
type UnknownModelError struct {
	Raw string
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("directory '%s' does not map to a known model name", e.Raw)
}

// Is lets callers test with errors.Is(err, ErrUnknownModel).
func (e *UnknownModelError) Is(target error) bool { return target == ErrUnknownModel }

// Models returns a copy of the whitelist in declaration order.
func Models() []ModelName {
	out := make([]ModelName, len(allowedModels))
	copy(out, allowedModels[:])
	return out
}

// CanonicalKey strips every character that is not an ASCII letter or digit
// and lower-cases the rest.
func CanonicalKey(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		}
	}
	return b.String()
}

// CanonicalizeModel maps a raw model directory name onto the whitelist.
// Matching is exact after key reduction; the only fuzzy rule is the
// "Nano Banana" prefix alias.
func CanonicalizeModel(raw string) (ModelName, error) {
	key := CanonicalKey(raw)

	if strings.HasPrefix(key, nanoBananaAlias) {
		return ModelNanoBananaPro, nil
	}

	for _, m := range allowedModels {
		if CanonicalKey(string(m)) == key {
			return m, nil
		}
	}
	return "", &UnknownModelError{Raw: raw}
}
