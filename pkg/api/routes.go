package api

// Handlers groups the resource handlers mounted by RegisterRoutes
type Handlers struct {
	Users    *UserHandler
	Advisory *AdvisoryHandler
	Analysis *AnalysisHandler
	Weather  *WeatherHandler
	News     *NewsHandler
	Chat     *ChatHandler
	Catalog  *CatalogHandler
}

// RegisterRoutes mounts every API route on the server
func RegisterRoutes(s *Server, h Handlers) {
	s.RegisterHandler("/api/users", h.Users.HandleUsers)
	s.RegisterHandler("/api/users/", h.Users.HandleUser)

	s.RegisterHandler("/api/recommendations", h.Advisory.HandleRecommendations)
	s.RegisterHandler("/api/predictions", h.Advisory.HandlePredictions)
	s.RegisterHandler("/api/predictions/", h.Advisory.HandlePrediction)

	s.RegisterHandler("/api/analyze/health", h.Analysis.HandleHealth)
	s.RegisterHandler("/api/analyze/soil", h.Analysis.HandleSoil)
	s.RegisterHandler("/api/fields", h.Analysis.HandleFields)

	s.RegisterHandler("/api/weather/", h.Weather.HandleForecast)

	s.RegisterHandler("/api/news", h.News.HandleNews)
	s.RegisterHandler("/api/news/categories", h.News.HandleCategories)

	s.RegisterHandler("/api/chat", h.Chat.HandleChat)
	s.RegisterHandler("/api/chat/history", h.Chat.HandleHistory)

	s.RegisterHandler("/api/catalog", h.Catalog.HandleCatalog)
	s.RegisterHandler("/api/catalog/", h.Catalog.HandleProfile)
}
