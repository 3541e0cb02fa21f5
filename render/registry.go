package render

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed templates
var templatesFS embed.FS

const fallbackCategory = "common"

// Legacy template values stored before "category/file.html" identifiers
// existed. They all resolve to the global default document.
var legacyTemplateKeys = map[string]bool{
	"classic": true,
	"royal":   true,
	"nature":  true,
	"modern":  true,
}

// Curated display names; anything missing gets a name derived from the
// file name.
var templateLabels = map[string]string{
	"wedding/default":    "Classic Wedding",
	"wedding/template2":  "Modern Love",
	"common/default":     "Universal Classic",
	"uzatu/default":      "Uzatu Classic",
	"sundet/default":     "Sundet Celebration",
	"tusaukeser/default": "Tusaukeser",
	"merei/default":      "Anniversary",
	"besik/default":      "Besik Toy",
}

type Template struct {
	ID       string // "wedding/default.html"
	Category string // "wedding"
	File     string // "default.html"
	Label    string
	HTML     string
}

// Option is what the editor's template picker consumes.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Registry holds every template document, loaded once at startup from
// the embedded asset tree and read-only afterwards.
type Registry struct {
	byID       map[string]*Template
	categories map[string][]*Template
	defaultID  string
}

func NewRegistry() (*Registry, error) {
	r := &Registry{
		byID:       make(map[string]*Template),
		categories: make(map[string][]*Template),
	}

	err := fs.WalkDir(templatesFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}
		rel := strings.TrimPrefix(path, "templates/")
		parts := strings.SplitN(rel, "/", 2)
		if len(parts) != 2 {
			return nil
		}
		raw, err := templatesFS.ReadFile(path)
		if err != nil {
			return err
		}

		category, file := parts[0], parts[1]
		fileBase := strings.TrimSuffix(file, ".html")
		label := templateLabels[category+"/"+fileBase]
		if label == "" {
			label = prettifyLabel(fileBase)
		}

		tpl := &Template{
			ID:       category + "/" + file,
			Category: category,
			File:     file,
			Label:    label,
			HTML:     string(raw),
		}
		r.byID[tpl.ID] = tpl
		r.categories[category] = append(r.categories[category], tpl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	if len(r.byID) == 0 {
		return nil, fmt.Errorf("no template documents embedded")
	}

	for _, list := range r.categories {
		sort.Slice(list, func(i, j int) bool { return list[i].Label < list[j].Label })
	}
	r.defaultID = r.pickGlobalDefault()
	return r, nil
}

func (r *Registry) pickGlobalDefault() string {
	if list := r.categories[fallbackCategory]; len(list) > 0 {
		return list[0].ID
	}
	cats := r.CategoryNames()
	return r.categories[cats[0]][0].ID
}

// Resolve returns the document for a template identifier, falling back
// softly so the preview never goes blank: the default document is the
// answer to anything unknown.
func (r *Registry) Resolve(id string) *Template {
	id = strings.TrimSpace(id)
	if id == "" || legacyTemplateKeys[id] {
		return r.byID[r.defaultID]
	}
	if tpl, ok := r.byID[id]; ok {
		return tpl
	}
	if !strings.Contains(id, "/") {
		if list := r.categories[id]; len(list) > 0 {
			return list[0]
		}
	}
	return r.byID[r.defaultID]
}

// CategoryDefault returns the template id a new invite in the given
// category starts with.
func (r *Registry) CategoryDefault(category string) string {
	if list := r.categories[category]; len(list) > 0 {
		return list[0].ID
	}
	return r.defaultID
}

func (r *Registry) DefaultID() string {
	return r.defaultID
}

func (r *Registry) Options(category string) []Option {
	list := r.categories[category]
	opts := make([]Option, 0, len(list))
	for _, tpl := range list {
		opts = append(opts, Option{ID: tpl.ID, Label: tpl.Label})
	}
	return opts
}

func (r *Registry) CategoryNames() []string {
	names := make([]string, 0, len(r.categories))
	for name := range r.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func prettifyLabel(fileBase string) string {
	cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(fileBase)
	words := strings.Fields(cleaned)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
