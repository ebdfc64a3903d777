package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuTool_Execute(t *testing.T) {
	tool := NewMenuTool()

	tests := []struct {
		name      string
		arguments string
		want      string
	}{
		{
			name:      "breakfast",
			arguments: `{"category":"breakfast"}`,
			want:      "Aloo Paratha (₹40), Poha (₹30), Idli Sambar (₹35), Dosa with Coconut Chutney (₹40), Bread Omelette (₹35), Filter Coffee (₹20)",
		},
		{
			name:      "lunch keeps stored order",
			arguments: `{"category":"lunch"}`,
			want:      "Paneer Butter Masala (₹120), Dal Tadka (₹80), Jeera Rice (₹60), Roti (2 pieces) (₹20), Rajma Masala (₹100), Vegetable Biryani (₹130), Salad (₹40), Mango Lassi (₹50)",
		},
		{
			name:      "category is case-insensitive",
			arguments: `{"category":"DiNnEr"}`,
			want:      "Veg Biryani (₹130), Matar Paneer (₹120), Dal Makhani (₹100), Butter Naan (2 pieces) (₹40), Gulab Jamun (₹40), Masala Chai (₹20)",
		},
		{
			name:      "surrounding whitespace ignored",
			arguments: `{"category":"  lunch "}`,
			want:      "Paneer Butter Masala (₹120), Dal Tadka (₹80), Jeera Rice (₹60), Roti (2 pieces) (₹20), Rajma Masala (₹100), Vegetable Biryani (₹130), Salad (₹40), Mango Lassi (₹50)",
		},
		{
			name:      "unknown category falls back",
			arguments: `{"category":"brunch"}`,
			want:      MenuNotFound,
		},
		{
			name:      "empty category falls back",
			arguments: `{"category":""}`,
			want:      MenuNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tool.Execute(tt.arguments)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMenuTool_MalformedArguments(t *testing.T) {
	_, err := NewMenuTool().Execute(`{"category":`)
	assert.Error(t, err)
}

func TestMealPlannerTools(t *testing.T) {
	tests := []struct {
		tool ToolExecutor
		want string
	}{
		{NewBreakfastPlannerTool(), "A nice breakfast would be Aloo Paratha, Poha, Idli Sambar."},
		{NewLunchPlannerTool(), "For lunch, I’d suggest Paneer Butter Masala, Dal Tadka, Jeera Rice, Roti (2 pieces)."},
		{NewDinnerPlannerTool(), "For dinner tonight, Veg Biryani, Matar Paneer, Dal Makhani, Butter Naan (2 pieces) would be a great choice."},
	}

	for _, tt := range tests {
		t.Run(tt.tool.Definition().Function.Name, func(t *testing.T) {
			got, err := tt.tool.Execute("{}")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHealthAdviceTool_Execute(t *testing.T) {
	tool := NewHealthAdviceTool()

	tests := []struct {
		condition string
		want      string
	}{
		{"I have a cold", adviceCold},
		{"COLD and flu", adviceCold},
		{"upset Stomach", adviceStomach},
		{"cold and stomach ache", adviceCold},
		{"headache", adviceGeneral},
		{"", adviceGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.condition, func(t *testing.T) {
			got, err := tool.Execute(`{"condition":"` + tt.condition + `"}`)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInfoTools(t *testing.T) {
	got, err := NewOpeningHoursTool().Execute("{}")
	require.NoError(t, err)
	assert.Equal(t, "We are open every day from 7 AM to 11 PM.", got)

	got, err = NewSpecialityTool().Execute("{}")
	require.NoError(t, err)
	assert.Equal(t, "Our most loved dishes are Paneer Butter Masala, Dal Makhani and Veg Biryani.", got)
}

func TestMenu_ReturnsCopy(t *testing.T) {
	items, ok := Menu(Lunch)
	require.True(t, ok)
	items[0].Name = "changed"

	again, _ := Menu(Lunch)
	assert.Equal(t, "Paneer Butter Masala", again[0].Name)

	_, ok = Menu("brunch")
	assert.False(t, ok)
}
