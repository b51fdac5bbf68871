package pdf

import (
	"fmt"
	"io"
	"strings"
	"time"

	"jobbridge/internal/domain/beneficiary"

	"github.com/go-pdf/fpdf"
)

// Field is one selectable line of a beneficiary profile.
type Field struct {
	Key   string
	Label string
}

var profileFields = []Field{
	{Key: "full_name", Label: "Full Name"},
	{Key: "phone_number", Label: "Phone Number"},
	{Key: "email", Label: "Email"},
	{Key: "address", Label: "Address"},
	{Key: "date_of_birth", Label: "Date of Birth"},
	{Key: "gender", Label: "Gender"},
	{Key: "education", Label: "Education"},
	{Key: "skills", Label: "Skills"},
	{Key: "experience", Label: "Experience"},
	{Key: "created_at", Label: "Registration Date"},
}

var DefaultFields = []string{"full_name", "phone_number", "skills"}

func ProfileFields() []Field {
	out := make([]Field, len(profileFields))
	copy(out, profileFields)
	return out
}

// ResolveFields validates keys and returns them in catalogue order without
// duplicates. An empty selection yields DefaultFields.
func ResolveFields(keys []string) ([]string, error) {
	want := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if !knownField(k) {
			return nil, fmt.Errorf("unknown profile field %q", k)
		}
		want[k] = struct{}{}
	}
	if len(want) == 0 {
		out := make([]string, len(DefaultFields))
		copy(out, DefaultFields)
		return out, nil
	}

	out := make([]string, 0, len(want))
	for _, f := range profileFields {
		if _, ok := want[f.Key]; ok {
			out = append(out, f.Key)
		}
	}
	return out, nil
}

func knownField(key string) bool {
	for _, f := range profileFields {
		if f.Key == key {
			return true
		}
	}
	return false
}

func fieldLabel(key string) string {
	for _, f := range profileFields {
		if f.Key == key {
			return f.Label
		}
	}
	return key
}

// FieldValue returns the display text for key, or "" when the beneficiary has
// no value for it.
func FieldValue(b beneficiary.Beneficiary, key string) string {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return strings.TrimSpace(*s)
	}

	switch key {
	case "full_name":
		return b.FullName
	case "phone_number":
		return b.PhoneNumber
	case "email":
		return deref(b.Email)
	case "address":
		return deref(b.Address)
	case "date_of_birth":
		return deref(b.DateOfBirth)
	case "gender":
		return deref(b.Gender)
	case "education":
		return deref(b.Education)
	case "skills":
		return strings.Join(b.Skills.Labels(), ", ")
	case "experience":
		return deref(b.Experience)
	case "created_at":
		if b.CreatedAt.IsZero() {
			return ""
		}
		return b.CreatedAt.UTC().Format(time.DateOnly)
	default:
		return ""
	}
}

// FileName is "<Full_Name>_profile.pdf".
func FileName(b beneficiary.Beneficiary) string {
	name := strings.Join(strings.Fields(b.FullName), "_")
	if name == "" {
		name = "beneficiary"
	}
	return name + "_profile.pdf"
}

// RenderProfile writes an A4 profile with the given field keys. Fields with no
// value are skipped.
func RenderProfile(w io.Writer, b beneficiary.Beneficiary, fields []string, generatedAt time.Time) error {
	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetTitle("Beneficiary Profile", true)
	doc.SetCreator("jobbridge", true)
	doc.SetAutoPageBreak(true, 20)
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(128, 128, 128)
		doc.CellFormat(0, 5, tr("Generated on "+generatedAt.UTC().Format("2006-01-02 at 15:04:05 UTC")), "", 0, "L", false, 0, "")
	})
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 20)
	doc.SetTextColor(0, 150, 136)
	doc.SetXY(20, 12)
	doc.CellFormat(0, 10, tr("Beneficiary Profile"), "", 1, "L", false, 0, "")
	doc.SetDrawColor(0, 150, 136)
	doc.Line(20, 25, 190, 25)

	doc.SetY(32)
	doc.SetTextColor(0, 0, 0)
	for _, key := range fields {
		value := FieldValue(b, key)
		if value == "" {
			continue
		}
		doc.SetX(20)
		doc.SetFont("Helvetica", "B", 12)
		doc.CellFormat(0, 7, tr(fieldLabel(key)+":"), "", 1, "L", false, 0, "")
		doc.SetX(20)
		doc.SetFont("Helvetica", "", 12)
		doc.MultiCell(160, 7, tr(value), "", "L", false)
		doc.Ln(5)
	}

	if err := doc.Error(); err != nil {
		return fmt.Errorf("render profile: %w", err)
	}
	return doc.Output(w)
}
