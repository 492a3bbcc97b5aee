package specs

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Extensiones aceptadas como ficha técnica.
var specExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".pdf":  true,
}

var extPattern = regexp.MustCompile(`\.[^/.]+$`)

// ListFiles enumera las fichas presentes en el directorio, en orden
// estable. Un directorio inexistente cuenta como catálogo vacío.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if specExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// Stem reduce un filename a su nombre de producto: lo que precede al primer
// paréntesis y a la extensión. "Galaxy-Watch5(Black).jpg" -> "Galaxy-Watch5".
func Stem(filename string) string {
	s, _, _ := strings.Cut(filename, "(")
	return strings.TrimSpace(extPattern.ReplaceAllString(s, ""))
}

// CleanName normaliza un filename para búsqueda: minúsculas, sin extensión,
// espacios y guiones colapsados a un espacio simple.
func CleanName(filename string) string {
	s := strings.ToLower(extPattern.ReplaceAllString(filename, ""))
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '-'
	}), " ")
}
