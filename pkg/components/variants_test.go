package components

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"
)

func TestButton_Render(t *testing.T) {
	b := NewButton("Save & close")
	require.Equal(t, "Button", b.Name)
	require.Equal(t, "btn btn-primary btn-sm", b.Class())

	out := render(t, b)
	require.Equal(t, `<button class="btn btn-primary btn-sm" id="`+b.DOMID()+`" type="button">Save &amp; close</button>`, out)

	b.Disabled = true
	b.Type = "submit"
	out = render(t, b)
	require.Contains(t, out, `class="btn btn-primary btn-sm opacity-50 cursor-not-allowed"`)
	require.Contains(t, out, ` disabled `)
	require.Contains(t, out, `type="submit"`)

	b.Content = templ.Raw("<b>x</b>")
	require.Contains(t, render(t, b), "<b>x</b></button>")
}

func TestButton_Invisible(t *testing.T) {
	b := NewButton("x")
	b.Visible = false
	require.Equal(t, "", render(t, b))
}

func TestInputType(t *testing.T) {
	require.Equal(t, "datetime-local", InputDateTimeLocal.String())
	require.Equal(t, "text", InputText.String())
	require.Equal(t, "text", InputType(99).String())

	typ, err := ParseInputType("datetime_local")
	require.NoError(t, err)
	require.Equal(t, InputDateTimeLocal, typ)

	typ, err = ParseInputType(" Email ")
	require.NoError(t, err)
	require.Equal(t, InputEmail, typ)

	_, err = ParseInputType("dropdown")
	require.Error(t, err)
}

func TestInput_Render(t *testing.T) {
	in := NewTextInput()
	in.FieldName = "title"
	in.Value = `say "hi"`
	in.ReadOnly = true

	require.Equal(t, "Text Input", in.Name)
	require.True(t, in.HasClass("form-control"))

	out := render(t, in)
	require.True(t, strings.HasPrefix(out, "<input "))
	require.Contains(t, out, `class="form-control bg-light"`)
	require.Contains(t, out, `name="title"`)
	require.Contains(t, out, `type="text"`)
	require.Contains(t, out, `value="say &#34;hi&#34;"`)
	require.Contains(t, out, ` readonly`)
	require.Contains(t, out, `aria-label="Input with value"`)
	require.NotContains(t, out, "</input>")
}

func TestInput_NumberValue(t *testing.T) {
	in := NewInput[int](InputNumber)
	in.Change("12")
	require.Contains(t, render(t, in), `value="12"`)
}

func TestCheckbox(t *testing.T) {
	cb := NewCheckbox()
	require.Equal(t, "Checkbox", cb.Name)
	require.Equal(t, InputCheckbox, cb.Type)

	out := render(t, cb)
	require.Contains(t, out, `type="checkbox"`)
	require.NotContains(t, out, "checked")

	cb.Change("True")
	require.True(t, cb.Value)
	out = render(t, cb)
	require.Contains(t, out, " checked ")
	require.Contains(t, out, `value="true"`)
}

func TestLabel(t *testing.T) {
	in := NewTextInput()
	l := NewLabelFor(&in.Element, "Title <required>")
	l.AddClass("form-control fw-bold")

	require.False(t, l.HasClass("form-control"))
	require.True(t, l.HasClass("fw-bold"))

	out := render(t, l)
	require.Equal(t, `<label class="form-label fw-bold" for="`+in.DOMID()+`" id="`+l.DOMID()+`">Title &lt;required&gt;</label>`, out)
}

func TestTextArea(t *testing.T) {
	ta := NewTextArea()
	ta.Value = "</textarea><script>"
	ta.Rows = 5
	out := render(t, ta)
	require.Contains(t, out, `rows="5"`)
	require.Contains(t, out, "&lt;/textarea&gt;&lt;script&gt;</textarea>")
	require.Equal(t, "Text Area", ta.Name)

	ta.Disabled = true
	require.Contains(t, render(t, ta), " disabled ")
}

func TestSpinner(t *testing.T) {
	s := NewSpinner()
	out := render(t, s)
	require.Contains(t, out, `class="spinner-border spinner-border-sm"`)
	require.Contains(t, out, `role="status"`)
	require.Contains(t, out, `<span class="visually-hidden">Loading...</span></div>`)

	s.Disabled = true
	s.ReadOnly = true
	out = render(t, s)
	require.Contains(t, out, "opacity-50")
	require.NotContains(t, out, " disabled")
	require.NotContains(t, out, " readonly")
}

func TestDropdownList_FirstOptionSelected(t *testing.T) {
	d := NewDropdownList()
	d.SetOptions(
		DropdownOption{Key: "tr", Value: "Turkey"},
		DropdownOption{Key: "us", Value: "United States"},
	)
	require.Len(t, d.Options, 2)
	require.Equal(t, "tr", d.Value.Key)
	require.True(t, d.Options[0].Selected)
	require.False(t, d.Options[1].Selected)
}

func TestDropdownList_Placeholder(t *testing.T) {
	d := NewDropdownList()
	d.PlaceholderText = "Pick one"
	d.SetOptionsWithPlaceholder(true, DropdownOption{Key: "a"})

	require.Len(t, d.Options, 2)
	require.Equal(t, "", d.Value.Key)
	require.Equal(t, "Pick one", d.Value.Text())
	require.True(t, d.Options[0].Selected)
	require.False(t, d.Options[1].Selected)
}

func TestDropdownList_SelectByKey(t *testing.T) {
	d := NewDropdownList()
	d.SetOptions(DropdownOption{Key: "a"}, DropdownOption{Key: "b", Value: "Bee"})

	var changed, selected []string
	d.OnValueChanged = func(o *DropdownOption) { changed = append(changed, o.Key) }
	d.OnSelectedOptionChanged = func(o *DropdownOption) { selected = append(selected, o.Key) }

	require.True(t, d.SelectByKey("b"))
	require.False(t, d.SelectByKey("zzz"))
	require.Equal(t, "b", d.Change("b").Key)

	require.Equal(t, []string{"b", "b"}, changed)
	require.Equal(t, []string{"b", "b"}, selected)
	require.False(t, d.Options[0].Selected)
	require.True(t, d.Options[1].Selected)

	out := render(t, d)
	require.Contains(t, out, `<option value="a">a</option>`)
	require.Contains(t, out, `<option selected value="b">Bee</option>`)
}

func TestDropdownList_SetOptionsKeepsSelection(t *testing.T) {
	d := NewDropdownList()
	d.SetOptions(DropdownOption{Key: "a"}, DropdownOption{Key: "b"})
	d.SelectByKey("b")

	d.SetOptions(DropdownOption{Key: "c"}, DropdownOption{Key: "b"})
	require.Equal(t, "b", d.Value.Key)

	d.SetOptions(DropdownOption{Key: "x"})
	require.Equal(t, "x", d.Value.Key)
}

func TestDropdownOption_String(t *testing.T) {
	var o *DropdownOption
	require.Equal(t, "null", o.String())
	require.Equal(t, "k: v", (&DropdownOption{Key: "k", Value: "v"}).String())
}

type person struct {
	Name string
	Age  int
}

func TestGrid(t *testing.T) {
	g := NewGrid(func(p person) templ.Component {
		return TextRow(p.Name, "<"+p.Name+">")
	})
	g.Header = HeaderRow("Name", "Tag")
	g.EmptyText = "Nothing here"

	out := render(t, g)
	require.Contains(t, out, "<thead><tr><th>Name</th><th>Tag</th></tr></thead>")
	require.Contains(t, out, "<tbody><tr><td>Nothing here</td></tr></tbody>")

	g.Items = []person{{Name: "ada"}, {Name: "bob"}}
	out = render(t, g)
	require.Contains(t, out, `class="table table-sm"`)
	require.Contains(t, out, "<tr><td>ada</td><td>&lt;ada&gt;</td></tr><tr><td>bob</td>")
	require.NotContains(t, out, "Nothing here")
}

type failingComponent struct{}

func (failingComponent) Render(context.Context, io.Writer) error { return io.ErrShortWrite }

func TestGrid_PropagatesRowError(t *testing.T) {
	g := NewGrid(func(int) templ.Component { return failingComponent{} })
	g.Items = []int{1}
	var sb strings.Builder
	require.ErrorIs(t, g.Render(context.Background(), &sb), io.ErrShortWrite)
}

func TestMarkdown(t *testing.T) {
	m := NewMarkdown("Use **bold** <script>alert(1)</script>")
	out := render(t, m)
	require.Contains(t, out, `class="form-text"`)
	require.Contains(t, out, "<strong>bold</strong>")
	require.NotContains(t, out, "<script")
}
