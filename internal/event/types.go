package event

const (
	AssetsLoaded  EventType = "AssetsLoaded"  // все текстуры готовы, Data: *assets.TextureSet
	AssetFallback EventType = "AssetFallback" // текстура заменена заглушкой, Data: assets.Result
	ScrollChanged EventType = "ScrollChanged" // страница прокручена, Data: float64 (top)
)
