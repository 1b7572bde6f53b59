// Package catalog loads translation catalogs and resolves canonical English
// strings to their translation for a locale.
package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const (
	// BaseLocale is the locale of the canonical strings used as message keys.
	BaseLocale = "en-US"
)

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// LocaleCatalog stores all messages for one locale, grouped by namespace.
type LocaleCatalog struct {
	Locale     string
	Namespaces map[string]map[string]string
	Messages   map[string]string
}

// Bundle contains all locale catalogs loaded from one filesystem.
type Bundle struct {
	locales map[string]*LocaleCatalog
}

//go:embed locales/*/*.yaml
var embeddedCatalogFS embed.FS

// LoadEmbedded loads catalog files embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedCatalogFS)
}

// LoadFromFS loads every locales/<locale>/<namespace>.yaml file in catalogFS.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{locales: map[string]*LocaleCatalog{}}
	for _, p := range paths {
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		parsed, err := parseCatalogFile(data)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := bundle.addFile(p, parsed); err != nil {
			return nil, err
		}
	}
	if err := bundle.checkParity(); err != nil {
		return nil, err
	}
	return bundle, nil
}

// checkParity requires every locale to define the same namespaces with the
// same keys as the first locale in sorted order.
func (b *Bundle) checkParity() error {
	locales := b.Locales()
	if len(locales) < 2 {
		return nil
	}
	reference := b.locales[locales[0]]
	for _, locale := range locales[1:] {
		current := b.locales[locale]
		for namespace, want := range reference.Namespaces {
			got, ok := current.Namespaces[namespace]
			if !ok {
				return fmt.Errorf("catalog %s: namespace %q missing, defined by %s", locale, namespace, reference.Locale)
			}
			if err := sameKeys(want, got); err != nil {
				return fmt.Errorf("catalog %s/%s: %w", locale, namespace, err)
			}
		}
		for namespace := range current.Namespaces {
			if _, ok := reference.Namespaces[namespace]; !ok {
				return fmt.Errorf("catalog %s: namespace %q not defined by %s", locale, namespace, reference.Locale)
			}
		}
	}
	return nil
}

func sameKeys(want, got map[string]string) error {
	for key := range want {
		if _, ok := got[key]; !ok {
			return fmt.Errorf("missing key %q", key)
		}
	}
	for key := range got {
		if _, ok := want[key]; !ok {
			return fmt.Errorf("unexpected key %q", key)
		}
	}
	return nil
}

func (b *Bundle) addFile(p string, file catalogFile) error {
	localeFromPath := path.Base(path.Dir(p))
	namespaceFromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))

	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", p)
	}
	if locale != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, locale, localeFromPath)
	}
	if _, err := language.Parse(locale); err != nil {
		return fmt.Errorf("catalog %s: invalid locale %q: %w", p, locale, err)
	}

	namespace := strings.TrimSpace(file.Namespace)
	if namespace == "" {
		return fmt.Errorf("catalog %s: namespace is required", p)
	}
	if namespace != namespaceFromPath {
		return fmt.Errorf("catalog %s: namespace %q must match filename namespace %q", p, namespace, namespaceFromPath)
	}
	if file.Messages == nil {
		return fmt.Errorf("catalog %s: messages map is required", p)
	}

	localeCatalog, ok := b.locales[locale]
	if !ok {
		localeCatalog = &LocaleCatalog{
			Locale:     locale,
			Namespaces: map[string]map[string]string{},
			Messages:   map[string]string{},
		}
		b.locales[locale] = localeCatalog
	}
	if _, exists := localeCatalog.Namespaces[namespace]; exists {
		return fmt.Errorf("catalog %s: namespace %q already defined for locale %q", p, namespace, locale)
	}

	namespaceMessages := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		trimmedKey := strings.TrimSpace(key)
		if trimmedKey == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if trimmedKey != key {
			return fmt.Errorf("catalog %s: key %q has surrounding whitespace", p, key)
		}
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("catalog %s: key %q has a blank translation", p, key)
		}
		if _, exists := localeCatalog.Messages[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, locale)
		}
		localeCatalog.Messages[key] = value
		namespaceMessages[key] = value
	}
	localeCatalog.Namespaces[namespace] = namespaceMessages
	return nil
}

// Require reports an error naming every locale without a catalog.
func (b *Bundle) Require(locales ...string) error {
	var missing []string
	for _, locale := range locales {
		if !b.hasLocale(locale) {
			missing = append(missing, locale)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing catalogs for %s", strings.Join(missing, ", "))
	}
	return nil
}

func (b *Bundle) hasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns the locales that have catalogs.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Message returns the translation of canonical for locale.
//
// Lookup tries the exact locale, then any catalog sharing its base language.
// The bool is false when no translation exists.
func (b *Bundle) Message(locale string, canonical string) (string, bool) {
	if b == nil || canonical == "" {
		return "", false
	}
	locale = strings.TrimSpace(locale)
	if catalog, ok := b.locales[locale]; ok {
		if value, exists := catalog.Messages[canonical]; exists {
			return value, true
		}
		return "", false
	}
	for _, candidate := range b.sameLanguage(locale) {
		if value, exists := b.locales[candidate].Messages[canonical]; exists {
			return value, true
		}
	}
	return "", false
}

// Translate returns the translation of canonical for locale, or canonical itself.
func (b *Bundle) Translate(locale string, canonical string) string {
	if value, ok := b.Message(locale, canonical); ok {
		return value
	}
	return canonical
}

func (b *Bundle) sameLanguage(locale string) []string {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil
	}
	base, _ := tag.Base()
	var out []string
	for _, candidate := range b.Locales() {
		candidateTag, err := language.Parse(candidate)
		if err != nil {
			continue
		}
		if candidateBase, _ := candidateTag.Base(); candidateBase == base {
			out = append(out, candidate)
		}
	}
	return out
}

// Localizer translates canonical strings for one locale.
type Localizer struct {
	bundle  *Bundle
	locale  string
	printer *message.Printer
}

// Localizer returns a localizer bound to locale.
func (b *Bundle) Localizer(locale string) Localizer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(BaseLocale)
	}
	return Localizer{bundle: b, locale: locale, printer: message.NewPrinter(tag)}
}

// Locale returns the locale the localizer is bound to.
func (l Localizer) Locale() string {
	return l.locale
}

// Sprintf translates key and formats args with the locale's number rules.
func (l Localizer) Sprintf(key message.Reference, args ...any) string {
	canonical, ok := key.(string)
	if !ok {
		return ""
	}
	translated := l.bundle.Translate(l.locale, canonical)
	if len(args) == 0 {
		return translated
	}
	if l.printer == nil {
		return fmt.Sprintf(translated, args...)
	}
	return l.printer.Sprintf(translated, args...)
}

func parseCatalogFile(data []byte) (catalogFile, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var out catalogFile
	if err := decoder.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return catalogFile{}, fmt.Errorf("empty catalog")
		}
		return catalogFile{}, err
	}
	if out.Locale == "" {
		return catalogFile{}, fmt.Errorf("missing locale")
	}
	if out.Namespace == "" {
		return catalogFile{}, fmt.Errorf("missing namespace")
	}
	if len(out.Messages) == 0 {
		return catalogFile{}, fmt.Errorf("missing messages")
	}
	return out, nil
}
