package knowledge

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractText reduce una descripción de producto pegada como HTML (páginas
// de fabricante, fichas web) al texto plano que se guarda como specs. Si el
// contenido no parece HTML se devuelve tal cual.
func ExtractText(content string) string {
	if !strings.Contains(content, "<") {
		return strings.TrimSpace(content)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return strings.TrimSpace(content)
	}

	var parts []string
	doc.Find("h1, h2, h3, p, li, td").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	if len(parts) == 0 {
		return strings.TrimSpace(doc.Text())
	}
	return strings.Join(parts, "\n")
}
