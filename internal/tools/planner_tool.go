package tools

import "fmt"

// MealPlannerTool suggests a meal built from the first dishes of one menu.
type MealPlannerTool struct {
	name        string
	description string
	category    string
	count       int
	format      string // takes the joined dish names
}

var _ ToolExecutor = (*MealPlannerTool)(nil)

func NewBreakfastPlannerTool() *MealPlannerTool {
	return &MealPlannerTool{
		name:        "planBreakfast",
		description: "Suggest a breakfast",
		category:    Breakfast,
		count:       3,
		format:      "A nice breakfast would be %s.",
	}
}

func NewLunchPlannerTool() *MealPlannerTool {
	return &MealPlannerTool{
		name:        "planLunch",
		description: "Suggest a lunch",
		category:    Lunch,
		count:       4,
		format:      "For lunch, I’d suggest %s.",
	}
}

func NewDinnerPlannerTool() *MealPlannerTool {
	return &MealPlannerTool{
		name:        "planDinner",
		description: "Suggest a dinner",
		category:    Dinner,
		count:       4,
		format:      "For dinner tonight, %s would be a great choice.",
	}
}

func (pt *MealPlannerTool) Definition() Tool {
	return NewFunctionTool(pt.name, pt.description, noParameters())
}

// Execute ignores its arguments; the plan depends only on the menu.
func (pt *MealPlannerTool) Execute(string) (string, error) {
	return fmt.Sprintf(pt.format, firstNames(pt.category, pt.count)), nil
}
