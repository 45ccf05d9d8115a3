package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/mintgate/mintterm/pkg/logging"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Translator resolves dotted-path keys against the active language catalog.
// Every user-facing string in the terminal goes through a Translator.
type Translator interface {
	// T returns the translation for key, interpolating {{param}} placeholders.
	// A missing key degrades gracefully: the key itself is returned and a
	// warning is logged.
	T(key string, params ...map[string]string) string
	// TSlice returns a multi-entry translation (catalog lists), or nil when
	// the key is missing or scalar.
	TSlice(key string) []string
	Language() string
	// SetLanguage switches the active catalog. Unsupported codes leave the
	// current language unchanged and return an error.
	SetLanguage(code string) error
	SupportedLanguages() []string
}

type catalogTranslator struct {
	mu       sync.RWMutex
	language string
	catalogs map[string]map[string]interface{}
	logger   logging.Logger
}

// NewTranslator loads all embedded catalogs and activates the given language,
// falling back to English when the code is unsupported.
func NewTranslator(language string) (Translator, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded locales: %w", err)
	}

	catalogs := make(map[string]map[string]interface{})
	for _, entry := range entries {
		code := strings.TrimSuffix(entry.Name(), ".yaml")
		data, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", code, err)
		}
		var catalog map[string]interface{}
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", code, err)
		}
		catalogs[code] = catalog
	}

	if len(catalogs) == 0 {
		return nil, fmt.Errorf("no locale catalogs embedded")
	}

	t := &catalogTranslator{
		language: "en",
		catalogs: catalogs,
		logger:   logging.NewComponentLogger("i18n"),
	}

	if language != "" && language != t.language {
		if err := t.SetLanguage(language); err != nil {
			t.logger.Warn("unsupported startup language, falling back to en", "language", language)
		}
	}

	return t, nil
}

func (t *catalogTranslator) T(key string, params ...map[string]string) string {
	value, ok := t.lookup(key)
	if !ok {
		t.logger.Warn("missing translation key", "key", key, "language", t.Language())
		return key
	}

	text, ok := value.(string)
	if !ok {
		t.logger.Warn("translation key is not a string", "key", key)
		return key
	}

	if len(params) > 0 {
		text = interpolate(text, params[0])
	}
	return text
}

func (t *catalogTranslator) TSlice(key string) []string {
	value, ok := t.lookup(key)
	if !ok {
		t.logger.Warn("missing translation key", "key", key, "language", t.Language())
		return nil
	}

	list, ok := value.([]interface{})
	if !ok {
		return nil
	}

	result := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

func (t *catalogTranslator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.language
}

func (t *catalogTranslator) SetLanguage(code string) error {
	code = strings.ToLower(strings.TrimSpace(code))

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.catalogs[code]; !ok {
		return fmt.Errorf("unsupported language: %s", code)
	}
	t.language = code
	return nil
}

func (t *catalogTranslator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	codes := make([]string, 0, len(t.catalogs))
	for code := range t.catalogs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// lookup walks the dotted path through the active catalog, falling back to
// English for keys untranslated in the active language.
func (t *catalogTranslator) lookup(key string) (interface{}, bool) {
	t.mu.RLock()
	catalog := t.catalogs[t.language]
	fallback := t.catalogs["en"]
	t.mu.RUnlock()

	if value, ok := walk(catalog, key); ok {
		return value, true
	}
	if value, ok := walk(fallback, key); ok {
		return value, true
	}
	return nil, false
}

func walk(catalog map[string]interface{}, key string) (interface{}, bool) {
	if catalog == nil {
		return nil, false
	}

	parts := strings.Split(key, ".")
	var current interface{} = catalog
	for _, part := range parts {
		node, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = node[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// interpolate replaces {{name}} placeholders with param values
func interpolate(text string, params map[string]string) string {
	for name, value := range params {
		text = strings.ReplaceAll(text, "{{"+name+"}}", value)
	}
	return text
}
