package palette

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/codr1/designtokens/internal/models"
)

func render(t *testing.T, component templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := component.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestCatalogList(t *testing.T) {
	html := render(t, CatalogList(models.Catalog()))

	for _, name := range []string{"Color", "Space", "Size", "Typography", "Border", "Shadow", "Duration"} {
		if !strings.Contains(html, ">"+name+"<") {
			t.Fatalf("catalog missing %q: %s", name, html)
		}
	}
}

func TestGroupList_EscapesNames(t *testing.T) {
	group := models.ColorGroup{ID: uuid.New(), Name: `<b>Brand</b>`}
	html := render(t, GroupList(NewGroups([]models.ColorGroup{group}, group.ID)))

	if strings.Contains(html, "<b>Brand</b>") {
		t.Fatalf("group name not escaped: %s", html)
	}
	if !strings.Contains(html, "group selected") {
		t.Fatalf("selected group not marked: %s", html)
	}
	if !strings.Contains(html, "/api/v1/groups/"+group.ID.String()+"/colors") {
		t.Fatalf("missing drill-down link: %s", html)
	}
}

func TestGroupList_Empty(t *testing.T) {
	html := render(t, GroupList(nil))
	if !strings.Contains(html, "No color groups yet.") {
		t.Fatalf("missing empty state: %s", html)
	}
}

func TestColorList_RendersSwatchesInOrder(t *testing.T) {
	group := models.ColorGroup{ID: uuid.New(), Name: "Brand"}
	entries := []models.ColorEntry{
		{ID: uuid.New(), GroupID: group.ID, Name: "Primary", Value: "#1F2937", Position: 0},
		{ID: uuid.New(), GroupID: group.ID, Name: "Paper", Value: "FFFFFF", Position: 1},
	}
	html := render(t, ColorList(NewColorListData(group, entries)))

	primary := strings.Index(html, "Primary")
	paper := strings.Index(html, "Paper")
	if primary < 0 || paper < 0 || primary > paper {
		t.Fatalf("swatches out of order: %s", html)
	}
	if !strings.Contains(html, "rgba(31, 41, 55, 1.000)") {
		t.Fatalf("missing decoded background: %s", html)
	}
	if !strings.Contains(html, "color: #FFFFFF") {
		t.Fatalf("dark swatch should use light text: %s", html)
	}
}

func TestDecodedColor_FlagsInvalidInput(t *testing.T) {
	swatch := models.NewSwatch(models.ColorEntry{Value: "ABC"})
	html := render(t, DecodedColor("ABC", swatch, false))
	if !strings.Contains(html, "not a 6 or 8 digit hex color") {
		t.Fatalf("missing warning: %s", html)
	}
}

func TestPrinter_EscapesEveryStringArgument(t *testing.T) {
	var buf bytes.Buffer
	p := &printer{w: &buf}
	p.printf(`<p data-id="%s" data-n="%d">%s</p>`, uuid.Nil, 7, `"><script>alert(1)</script>`)
	if p.err != nil {
		t.Fatalf("printf: %v", p.err)
	}

	want := `<p data-id="00000000-0000-0000-0000-000000000000" data-n="7">&#34;&gt;&lt;script&gt;alert(1)&lt;/script&gt;</p>`
	if got := buf.String(); got != want {
		t.Fatalf("printf = %q, want %q", got, want)
	}
}

func TestSwatchAndDecodedColor_EscapeUserText(t *testing.T) {
	entry := models.ColorEntry{ID: uuid.New(), Name: `<img src=x>`, Value: "#FF0000"}
	html := render(t, Swatch(models.NewSwatch(entry)))
	if strings.Contains(html, "<img") {
		t.Fatalf("swatch name not escaped: %s", html)
	}

	html = render(t, DecodedColor(`<i>red</i>`, models.NewSwatch(entry), false))
	if strings.Contains(html, "<i>red</i>") {
		t.Fatalf("decode input not escaped: %s", html)
	}
}
