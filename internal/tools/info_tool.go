package tools

// InfoTool answers a fixed question about the restaurant with a fixed sentence.
type InfoTool struct {
	name        string
	description string
	answer      string
}

var _ ToolExecutor = (*InfoTool)(nil)

func NewSpecialityTool() *InfoTool {
	return &InfoTool{
		name:        "speciality",
		description: "Restaurant speciality",
		answer:      "Our most loved dishes are Paneer Butter Masala, Dal Makhani and Veg Biryani.",
	}
}

func NewOpeningHoursTool() *InfoTool {
	return &InfoTool{
		name:        "openingHours",
		description: "Restaurant opening hours",
		answer:      "We are open every day from 7 AM to 11 PM.",
	}
}

func (it *InfoTool) Definition() Tool {
	return NewFunctionTool(it.name, it.description, noParameters())
}

func (it *InfoTool) Execute(string) (string, error) {
	return it.answer, nil
}
