// Package i18n holds the skill's localized message templates.
//
// A Bundle is loaded once at start-up and is read-only afterwards, so it is
// safe to share between concurrent invocations. Each invocation asks the
// bundle for a Translator bound to the request locale. Locales the bundle
// does not carry resolve to the default locale.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
	"path"
	"sort"
	"strings"
)

//go:embed locales/*.yaml
var localesFS embed.FS

var (
	ErrNoDefaultLocale = errors.New("default locale has no messages")
	ErrMissingKeys     = errors.New("locale is missing message keys")
)

type Bundle struct {
	tags     []language.Tag
	messages []map[string]string
	matcher  language.Matcher
}

// Load builds a bundle from the locale files embedded in the binary.
func Load(defaultLocale string) (*Bundle, error) {
	entries, err := localesFS.ReadDir("locales")
	if err != nil {
		return nil, err
	}

	resources := make(map[string][]byte, len(entries))
	for _, e := range entries {
		data, err := localesFS.ReadFile(path.Join("locales", e.Name()))
		if err != nil {
			return nil, err
		}
		resources[strings.TrimSuffix(e.Name(), path.Ext(e.Name()))] = data
	}

	return New(defaultLocale, resources)
}

// New builds a bundle from YAML documents keyed by locale name.
// Every locale must define at least the keys of the default locale.
func New(defaultLocale string, resources map[string][]byte) (*Bundle, error) {
	defTag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parse default locale %q: %w", defaultLocale, err)
	}

	parsed := make(map[language.Tag]map[string]string, len(resources))
	for name, data := range resources {
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("parse locale %q: %w", name, err)
		}

		var msgs map[string]string
		if err := yaml.Unmarshal(data, &msgs); err != nil {
			return nil, fmt.Errorf("parse messages for %s: %w", name, err)
		}
		parsed[tag] = msgs
	}

	def, ok := parsed[defTag]
	if !ok || len(def) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoDefaultLocale, defTag)
	}

	// the matcher falls back to the first tag, so the default goes first
	b := &Bundle{
		tags:     []language.Tag{defTag},
		messages: []map[string]string{def},
	}

	others := make([]language.Tag, 0, len(parsed)-1)
	for tag := range parsed {
		if tag != defTag {
			others = append(others, tag)
		}
	}
	sort.Slice(others, func(i, j int) bool { return others[i].String() < others[j].String() })

	for _, tag := range others {
		msgs := parsed[tag]
		if missing := missingKeys(def, msgs); len(missing) > 0 {
			return nil, fmt.Errorf("%w: %s lacks %s", ErrMissingKeys, tag, strings.Join(missing, ", "))
		}
		b.tags = append(b.tags, tag)
		b.messages = append(b.messages, msgs)
	}

	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

func missingKeys(want, got map[string]string) []string {
	var missing []string
	for k := range want {
		if _, ok := got[k]; !ok {
			missing = append(missing, k)
		}
	}
	sort.Strings(missing)
	return missing
}

// Translator returns the translator for the closest supported locale.
func (b *Bundle) Translator(locale string) Translator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}

	_, idx, _ := b.matcher.Match(tag)
	return Translator{
		tag:      b.tags[idx],
		messages: b.messages[idx],
	}
}

// Translator renders message templates for a single locale.
type Translator struct {
	tag      language.Tag
	messages map[string]string
}

func (t Translator) Locale() string {
	return t.tag.String()
}

// T renders the template for key with printf-style positional arguments.
// An unknown key renders as the key itself.
func (t Translator) T(key string, args ...any) string {
	msg, ok := t.messages[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
