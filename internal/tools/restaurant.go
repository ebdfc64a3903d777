package tools

import "fmt"

// NewRestaurantToolManager returns a registry holding every restaurant tool
// in the order they are offered to the model.
func NewRestaurantToolManager() (*ToolManager, error) {
	manager := NewToolManager()
	for _, tool := range []ToolExecutor{
		NewMenuTool(),
		NewBreakfastPlannerTool(),
		NewLunchPlannerTool(),
		NewDinnerPlannerTool(),
		NewHealthAdviceTool(),
		NewSpecialityTool(),
		NewOpeningHoursTool(),
	} {
		if err := manager.Register(tool); err != nil {
			return nil, fmt.Errorf("failed to register restaurant tools: %w", err)
		}
	}
	return manager, nil
}
