package dom

import "github.com/fieldwork-dev/fieldwork/pkg/form"

// BuildForm constructs the element tree for a form: one group per field
// (input plus error slot), a hidden success indicator, and a submit button.
// Message fields render as textareas.
func BuildForm(name string, fields []*form.Field, successText string) *Element {
	root := NewElement("form").SetAttr("id", name+"-form")

	for _, f := range fields {
		tag := "input"
		if f.Name == "message" {
			tag = "textarea"
		}
		input := NewElement(tag).SetAttr("name", f.Name)
		if f.Required {
			input.SetAttr("required", "required")
		}

		label := NewElement("label").SetText(f.Label)
		slot := NewElement("span").AddClass(ClassErrorSlot)

		group := NewElement("div").AddClass(ClassGroup)
		group.Append(label, input, slot)
		root.Append(group)
	}

	if successText != "" {
		success := NewElement("div").
			AddClass(ClassSuccess).
			AddClass(ClassHidden).
			SetText(successText)
		root.Append(success)
	}

	button := NewElement("button").SetAttr("type", "submit").SetText("Send")
	root.Append(button)

	return root
}
