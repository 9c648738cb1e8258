package service

const DefaultLanguage = "en"

// Diccionarios fijos de UI; no salen de la base de datos.
var translations = map[string]map[string]string{
	"en": {
		"home":              "Home",
		"movies":            "Movies",
		"series":            "TV Series",
		"my_list":           "My List",
		"search":            "Search",
		"play":              "Play",
		"more_info":         "More Info",
		"continue_watching": "Continue Watching",
		"popular":           "Popular",
		"trending":          "Trending Now",
		"new_releases":      "New Releases",
		"action":            "Action",
		"comedy":            "Comedy",
		"drama":             "Drama",
		"horror":            "Horror",
		"sci_fi":            "Sci-Fi",
		"romance":           "Romance",
		"thriller":          "Thriller",
		"documentary":       "Documentary",
		"animation":         "Animation",
		"family":            "Family",
	},
	"es": {
		"home":              "Inicio",
		"movies":            "Películas",
		"series":            "Series de TV",
		"my_list":           "Mi Lista",
		"search":            "Buscar",
		"play":              "Reproducir",
		"more_info":         "Más Información",
		"continue_watching": "Continuar Viendo",
		"popular":           "Popular",
		"trending":          "Tendencias",
		"new_releases":      "Nuevos Lanzamientos",
		"action":            "Acción",
		"comedy":            "Comedia",
		"drama":             "Drama",
		"horror":            "Terror",
		"sci_fi":            "Ciencia Ficción",
		"romance":           "Romance",
		"thriller":          "Suspenso",
		"documentary":       "Documental",
		"animation":         "Animación",
		"family":            "Familia",
	},
	"fr": {
		"home":              "Accueil",
		"movies":            "Films",
		"series":            "Séries TV",
		"my_list":           "Ma Liste",
		"search":            "Rechercher",
		"play":              "Lire",
		"more_info":         "Plus d'Infos",
		"continue_watching": "Continuer à Regarder",
		"popular":           "Populaire",
		"trending":          "Tendances",
		"new_releases":      "Nouvelles Sorties",
		"action":            "Action",
		"comedy":            "Comédie",
		"drama":             "Drame",
		"horror":            "Horreur",
		"sci_fi":            "Science-Fiction",
		"romance":           "Romance",
		"thriller":          "Thriller",
		"documentary":       "Documentaire",
		"animation":         "Animation",
		"family":            "Famille",
	},
}

type TranslationService struct{}

func NewTranslationService() *TranslationService {
	return &TranslationService{}
}

// Get nunca falla: un código desconocido cae al idioma por defecto.
func (s *TranslationService) Get(lang string) map[string]string {
	if t, ok := translations[lang]; ok {
		return t
	}
	return translations[DefaultLanguage]
}
