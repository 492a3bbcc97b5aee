package specs

import (
	"fmt"
	"testing"
)

func TestSearcher_FindsByCompactQuery(t *testing.T) {
	s := NewSearcher([]string{
		"Huawei-Watch-GT6-Pro(Negro).jpg",
		"Samsung-Galaxy-Fit4.jpg",
	})
	files, total := s.Search("gt6pro")
	if total == 0 || len(files) == 0 {
		t.Fatal("Search() vacío, want la ficha del GT6 Pro")
	}
	if files[0] != "Huawei-Watch-GT6-Pro(Negro).jpg" {
		t.Fatalf("Search()[0] = %q", files[0])
	}
}

func TestSearcher_CapsDisplayButReportsTotal(t *testing.T) {
	var files []string
	for i := 0; i < 120; i++ {
		files = append(files, fmt.Sprintf("parlante-%03d.jpg", i))
	}
	shown, total := NewSearcher(files).Search("parlante")
	if total != 120 {
		t.Fatalf("total = %d, want 120", total)
	}
	if len(shown) != 100 {
		t.Fatalf("len(shown) = %d, want tope de 100", len(shown))
	}
}

func TestSearcher_NoMatches(t *testing.T) {
	shown, total := NewSearcher([]string{"parlante-jbl.jpg"}).Search("televisor")
	if total != 0 || len(shown) != 0 {
		t.Fatalf("Search() = %v (%d), want vacío", shown, total)
	}
}
