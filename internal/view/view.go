package view

import (
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

var (
	baseDir  string
	once     sync.Once
	tplCache = struct {
		sync.RWMutex
		m map[string]*template.Template
	}{m: map[string]*template.Template{}}
)

func detectBase() {
	candidates := []string{"templates", "../templates", "../../templates"}
	for _, c := range candidates {
		if fi, err := os.Stat(filepath.Clean(c)); err == nil && fi.IsDir() {
			baseDir = filepath.Clean(c)
			return
		}
	}
	baseDir = "templates"
}

// Funcs returns the shared template helpers.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"money": func(v float64) string { return "₦" + humanize.Commaf(v) },
		"year":  func() int { return time.Now().Year() },
		"yesno": func(b bool) string {
			if b {
				return "Yes"
			}
			return "No"
		},
	}
}

// Render parses and executes a page template on top of the shared layout.
// name is the filename, e.g. "dashboard.html".
func Render(w http.ResponseWriter, name string, data map[string]any) error {
	once.Do(detectBase)
	if data == nil {
		data = map[string]any{}
	}
	tpl, err := load(name)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tpl.ExecuteTemplate(w, "layout", data)
}

func load(name string) (*template.Template, error) {
	// Dev convenience: reparse on every request when DEV=1.
	if os.Getenv("DEV") != "1" {
		tplCache.RLock()
		cached := tplCache.m[name]
		tplCache.RUnlock()
		if cached != nil {
			return cached, nil
		}
	}
	tpl, err := template.New(name).Funcs(Funcs()).ParseFiles(
		filepath.Join(baseDir, "layout.html"),
		filepath.Join(baseDir, name),
	)
	if err != nil {
		return nil, err
	}
	tplCache.Lock()
	tplCache.m[name] = tpl
	tplCache.Unlock()
	return tpl, nil
}
