// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TargetFPS    = 60
	MaxDeltaTime = 0.06
	WindowTitle  = "Planet Scroll"

	// Камера
	CameraFovY   = 60.0
	CameraNear   = 0.1
	CameraFar    = 2500.0
	CameraStartX = 0.0
	CameraStartY = 0.0
	CameraStartZ = 500.0
	CameraMinZ   = -1000.0
	CameraMaxZ   = 500.0

	// Прокрутка страницы
	ScrollSensitivity = 0.2   // camera z = top * -ScrollSensitivity
	WheelStep         = 100.0 // пикселей на одно деление колеса
	KeyScrollStep     = 40.0
	PageScrollLength  = 2500.0 // максимальный scrollY виртуальной страницы

	// Звёзды
	StarCount    = 400
	StarSpread   = 500.0
	StarRadius   = 0.25
	StarSegments = 24

	// Планеты
	BodySegments = 32
	GroupSpin    = 0.005 // рад за шаг

	// Источники света
	PointLightX = 5.0
	PointLightY = 5.0
	PointLightZ = 5.0

	AmbientIntensity = 1.0
	PointIntensity   = 1.0

	// Ассеты
	AssetDir          = "assets/textures"
	BackgroundTexture = "space.jpg"
	NormalTexture     = "normal.jpg"

	// Терминальный вывод
	TermFrameMillis = 33
	TermCellAspect  = 2.0 // высота символа / ширина символа

	LabelFontSize = 12
)

var (
	BackgroundColor  = color.RGBA{5, 5, 12, 255}
	StarColor        = color.RGBA{255, 255, 255, 255}
	PointLightColor  = color.RGBA{255, 255, 255, 255}
	AmbientColor     = color.RGBA{255, 255, 255, 255}
	LabelColor       = color.RGBA{220, 220, 230, 255}
	ProgressBarColor = color.RGBA{70, 130, 180, 220}
	ProgressBgColor  = color.RGBA{40, 40, 55, 220}

	// Подстановки для текстур, которые не удалось загрузить
	FallbackAlbedo = color.RGBA{128, 128, 128, 255}
	FallbackNormal = color.RGBA{128, 128, 255, 255}
	FallbackSkyTop = color.RGBA{2, 2, 8, 255}
	FallbackSkyLow = color.RGBA{18, 14, 40, 255}
)

// Options holds the run-time settings parsed from the command line.
type Options struct {
	Backend     string
	AssetDir    string
	CatalogPath string
	Seed        int64
	PageLength  float64
	ScrollSpin  bool
	Labels      bool
	PprofAddr   string
}

// DefaultOptions returns the settings used when no flags are given.
func DefaultOptions() Options {
	return Options{
		Backend:    "raylib",
		AssetDir:   AssetDir,
		PageLength: PageScrollLength,
		ScrollSpin: true,
	}
}
