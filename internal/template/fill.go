package template

import (
	"strings"

	"lister-backend/internal/model"
)

// Fill substitutes the {{placeholder}} markers in a template with product
// data. Funko templates carry extra placeholders for pop-specific fields,
// and a gallery block gets the image tags injected.
func Fill(tmpl string, data model.TemplateFillRequest) string {
	replacements := map[string]string{
		"{{title}}":       data.Title,
		"{{condition}}":   data.Condition,
		"{{description}}": data.Description,
		"{{brand}}":       data.Brand,
		"{{model}}":       data.Model,
		"{{features}}":    strings.Join(data.Features, ", "),
	}

	if strings.Contains(strings.ToLower(tmpl), "funko") {
		boxDamage := "None"
		if len(data.BoxDamage) > 0 {
			boxDamage = strings.Join(data.BoxDamage, ", ")
		}
		vaulted := "No"
		if data.Vaulted {
			vaulted = "Yes"
		}
		replacements["{{pop_number}}"] = data.PopNumber
		replacements["{{series}}"] = data.Series
		replacements["{{character}}"] = data.Character
		replacements["{{exclusive}}"] = data.ExclusiveRelease
		replacements["{{box_condition}}"] = data.BoxCondition
		replacements["{{box_damage}}"] = boxDamage
		replacements["{{year_released}}"] = data.YearReleased
		replacements["{{vaulted}}"] = vaulted
	}

	html := tmpl
	for marker, value := range replacements {
		html = strings.ReplaceAll(html, marker, value)
	}

	if len(data.Images) > 0 {
		html = injectGallery(html, data.Images)
	}
	return html
}

// injectGallery replaces the contents of the first <div class="gallery">
// block with one <img> per image URL. Templates without a gallery block
// come back unchanged.
func injectGallery(html string, images []string) string {
	open := strings.Index(html, `<div class="gallery">`)
	if open < 0 {
		return html
	}
	contentStart := open + len(`<div class="gallery">`)
	closeOffset := strings.Index(html[contentStart:], "</div>")
	if closeOffset < 0 {
		return html
	}

	var b strings.Builder
	for _, u := range images {
		b.WriteString(`<img src="` + u + `"/>`)
	}
	return html[:contentStart] + b.String() + html[contentStart+closeOffset:]
}
