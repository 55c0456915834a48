package theme

var presets = map[string]Preset{
	"classic": {
		Name: "Classic",
		Light: Palette{
			Work: "#10B981", Break: "#F59E0B", LongBreak: "#3B82F6",
			BackgroundWork: "#F0FDF4", BackgroundBreak: "#FFFBEB", BackgroundLongBreak: "#EFF6FF",
			Text: "#1F2937", InputBg: "rgba(255, 255, 255, 0.8)", SettingsBg: "rgba(255, 255, 255, 0.95)",
		},
		Dark: Palette{
			Work: "#059669", Break: "#D97706", LongBreak: "#2563EB",
			BackgroundWork: "#064E3B", BackgroundBreak: "#451A03", BackgroundLongBreak: "#1E3A8A",
			Text: "#F9FAFB", InputBg: "rgba(17, 24, 39, 0.8)", SettingsBg: "rgba(17, 24, 39, 0.95)",
		},
	},
	"forest": {
		Name: "Forest",
		Light: Palette{
			Work: "#16A34A", Break: "#84CC16", LongBreak: "#22C55E",
			BackgroundWork: "#F0FDF4", BackgroundBreak: "#F7FEE7", BackgroundLongBreak: "#F0FDF4",
			Text: "#166534", InputBg: "rgba(255, 255, 255, 0.8)", SettingsBg: "rgba(240, 253, 244, 0.95)",
		},
		Dark: Palette{
			Work: "#15803D", Break: "#65A30D", LongBreak: "#16A34A",
			BackgroundWork: "#052E16", BackgroundBreak: "#1A2E05", BackgroundLongBreak: "#052E16",
			Text: "#DCFCE7", InputBg: "rgba(5, 46, 22, 0.8)", SettingsBg: "rgba(5, 46, 22, 0.95)",
		},
	},
	"ocean": {
		Name: "Ocean",
		Light: Palette{
			Work: "#0891B2", Break: "#06B6D4", LongBreak: "#0EA5E9",
			BackgroundWork: "#F0FDFA", BackgroundBreak: "#F0FDFA", BackgroundLongBreak: "#F0F9FF",
			Text: "#0E7490", InputBg: "rgba(255, 255, 255, 0.8)", SettingsBg: "rgba(240, 253, 250, 0.95)",
		},
		Dark: Palette{
			Work: "#0E7490", Break: "#0891B2", LongBreak: "#0369A1",
			BackgroundWork: "#042F2E", BackgroundBreak: "#042F2E", BackgroundLongBreak: "#0C4A6E",
			Text: "#CFFAFE", InputBg: "rgba(4, 47, 46, 0.8)", SettingsBg: "rgba(4, 47, 46, 0.95)",
		},
	},
	"sunset": {
		Name: "Sunset",
		Light: Palette{
			Work: "#EF4444", Break: "#F97316", LongBreak: "#F59E0B",
			BackgroundWork: "#FEF2F2", BackgroundBreak: "#FFF7ED", BackgroundLongBreak: "#FFFBEB",
			Text: "#B91C1C", InputBg: "rgba(255, 255, 255, 0.8)", SettingsBg: "rgba(254, 242, 242, 0.95)",
		},
		Dark: Palette{
			Work: "#DC2626", Break: "#EA580C", LongBreak: "#D97706",
			BackgroundWork: "#450A0A", BackgroundBreak: "#451A03", BackgroundLongBreak: "#451A03",
			Text: "#FEE2E2", InputBg: "rgba(69, 10, 10, 0.8)", SettingsBg: "rgba(69, 10, 10, 0.95)",
		},
	},
	"minimal": {
		Name: "Minimal",
		Light: Palette{
			Work: "#6B7280", Break: "#9CA3AF", LongBreak: "#D1D5DB",
			BackgroundWork: "#F9FAFB", BackgroundBreak: "#F3F4F6", BackgroundLongBreak: "#E5E7EB",
			Text: "#374151", InputBg: "rgba(255, 255, 255, 0.8)", SettingsBg: "rgba(249, 250, 251, 0.95)",
		},
		Dark: Palette{
			Work: "#4B5563", Break: "#6B7280", LongBreak: "#9CA3AF",
			BackgroundWork: "#111827", BackgroundBreak: "#1F2937", BackgroundLongBreak: "#374151",
			Text: "#F9FAFB", InputBg: "rgba(17, 24, 39, 0.8)", SettingsBg: "rgba(17, 24, 39, 0.95)",
		},
	},
	"purple": {
		Name: "Purple",
		Light: Palette{
			Work: "#8B5CF6", Break: "#EC4899", LongBreak: "#A855F7",
			BackgroundWork: "#FAF5FF", BackgroundBreak: "#FDF2F8", BackgroundLongBreak: "#F5F3FF",
			Text: "#6D28D9", InputBg: "rgba(255, 255, 255, 0.8)", SettingsBg: "rgba(250, 245, 255, 0.95)",
		},
		Dark: Palette{
			Work: "#7C3AED", Break: "#DB2777", LongBreak: "#9333EA",
			BackgroundWork: "#2E1065", BackgroundBreak: "#831843", BackgroundLongBreak: "#4C1D95",
			Text: "#F3E8FF", InputBg: "rgba(46, 16, 101, 0.8)", SettingsBg: "rgba(46, 16, 101, 0.95)",
		},
	},
	"nordic": {
		Name: "Nordic",
		Light: Palette{
			Work: "#5E81AC", Break: "#81A1C1", LongBreak: "#88C0D0",
			BackgroundWork: "#ECEFF4", BackgroundBreak: "#E5E9F0", BackgroundLongBreak: "#D8DEE9",
			Text: "#2E3440", InputBg: "rgba(255, 255, 255, 0.8)", SettingsBg: "rgba(236, 239, 244, 0.95)",
		},
		Dark: Palette{
			Work: "#4C566A", Break: "#5E81AC", LongBreak: "#81A1C1",
			BackgroundWork: "#2E3440", BackgroundBreak: "#3B4252", BackgroundLongBreak: "#434C5E",
			Text: "#ECEFF4", InputBg: "rgba(46, 52, 64, 0.8)", SettingsBg: "rgba(46, 52, 64, 0.95)",
		},
	},
	"warm": {
		Name: "Warm",
		Light: Palette{
			Work: "#F59E0B", Break: "#F97316", LongBreak: "#EF4444",
			BackgroundWork: "#FFFBEB", BackgroundBreak: "#FFF7ED", BackgroundLongBreak: "#FEF2F2",
			Text: "#B45309", InputBg: "rgba(255, 255, 255, 0.8)", SettingsBg: "rgba(255, 251, 235, 0.95)",
		},
		Dark: Palette{
			Work: "#D97706", Break: "#EA580C", LongBreak: "#DC2626",
			BackgroundWork: "#451A03", BackgroundBreak: "#450A0A", BackgroundLongBreak: "#450A0A",
			Text: "#FEF3C7", InputBg: "rgba(69, 26, 3, 0.8)", SettingsBg: "rgba(69, 26, 3, 0.95)",
		},
	},
}
