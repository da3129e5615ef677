package naming

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Flux", "flux"},
		{"Nano Banana PRO", "nanobananapro"},
		{"chat-gpt 4.0", "chatgpt40"},
		{"  __ ", ""},
		{"Mid_Journey!", "midjourney"},
		{"Réve", "rve"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalKey(tt.in))
		})
	}
}

func TestCanonicalizeModel_NanoBananaAlias(t *testing.T) {
	for _, raw := range []string{
		"nano-banana",
		"Nano Banana PRO",
		"NANOBANANA",
		"nano_banana_pro_v2",
		"Nano.Banana",
	} {
		t.Run(raw, func(t *testing.T) {
			got, err := CanonicalizeModel(raw)
			require.NoError(t, err)
			assert.Equal(t, ModelNanoBananaPro, got)
		})
	}
}

func TestCanonicalizeModel_ExactMatchEveryEntry(t *testing.T) {
	variants := []func(string) string{
		func(s string) string { return s },
		strings.ToLower,
		strings.ToUpper,
		func(s string) string { return " " + s + "!" },
		func(s string) string { return strings.Join(strings.Split(s, ""), "-") },
	}
	for _, m := range Models() {
		for i, v := range variants {
			raw := v(string(m))
			got, err := CanonicalizeModel(raw)
			require.NoError(t, err, "variant %d of %s: %q", i, m, raw)
			assert.Equal(t, m, got, "variant %d: %q", i, raw)
		}
	}
}

func TestCanonicalizeModel_WhitelistKeysDistinct(t *testing.T) {
	seen := map[string]ModelName{}
	for _, m := range Models() {
		k := CanonicalKey(string(m))
		prev, dup := seen[k]
		assert.False(t, dup, "%s and %s share key %q", prev, m, k)
		seen[k] = m
	}
}

func TestCanonicalizeModel_Unknown(t *testing.T) {
	for _, raw := range []string{"StableDiffusion", "Flux2", "", "Banana Nano", "Fluxx"} {
		t.Run(raw, func(t *testing.T) {
			got, err := CanonicalizeModel(raw)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.Is(err, ErrUnknownModel))

			var ue *UnknownModelError
			require.ErrorAs(t, err, &ue)
			assert.Equal(t, raw, ue.Raw)
			assert.Contains(t, err.Error(), "'"+raw+"'")
		})
	}
}

func TestModels_ReturnsCopy(t *testing.T) {
	a := Models()
	a[0] = "Mutated"
	assert.Equal(t, ModelByteDance, Models()[0])
}

func TestParentLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Claude 2.1 Maya Coorporate", "Claude_2.1_Maya_Coorporate"},
		{"ClaudeSet", "ClaudeSet"},
		{"a-b.c d", "a-b.c_d"},
		{"  two  spaces", "__two__spaces"},
		{"tab\there", "tab\there"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParentLabel(tt.in))
		})
	}
}

func TestTargetName(t *testing.T) {
	assert.Equal(t, "ClaudeSet-Flux-1.png", TargetName("ClaudeSet", ModelFlux, 1, ".PNG"))
	assert.Equal(t, "A_B-NanoBananaPro-12.jpeg", TargetName("A_B", ModelNanoBananaPro, 12, ".Jpeg"))
}

func TestIsImage(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a.png", true},
		{"a.PNG", true},
		{"a.jpg", true},
		{"a.JPEG", true},
		{"a.webp", true},
		{"a.Gif", true},
		{"a.txt", false},
		{"a.heic", false},
		{"png", false},
		{".png", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsImage(tt.name))
		})
	}
}

func TestTargetRegistry(t *testing.T) {
	r := NewTargetRegistry()
	require.NoError(t, r.Claim("/d/a.png", "/d/P-Flux-1.png"))
	require.NoError(t, r.Claim("/d/a.png", "/d/P-Flux-1.png"), "same owner re-claim")
	require.NoError(t, r.Claim("/d/b.png", "/d/P-Flux-2.png"))

	err := r.Claim("/d/c.png", "/d/P-Flux-1.png")
	var ce *CollisionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "/d", ce.Dir)
	assert.Equal(t, "P-Flux-1.png", ce.Target)
	assert.Equal(t, "a.png", ce.Existing)
	assert.Equal(t, "c.png", ce.Incoming)
	assert.Equal(t, "target name collision in /d: c.png and a.png -> P-Flux-1.png", err.Error())
}
