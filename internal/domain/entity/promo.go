package entity

// Contenido promocional del sitio público: carrusel principal, carrusel de
// videos y grilla de anuncios. Son colecciones pequeñas (<10 elementos) cuyo
// orden de exhibición es autoritativo en el backend; el campo Order se
// reasigna completo en cada reordenamiento.

// HeroSlide lámina del carrusel principal.
type HeroSlide struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	LinkTo   string `json:"linkTo"`
	Active   bool   `json:"active"`
	Order    int    `json:"order"`
}

// VideoSlide entrada del carrusel de videos. URL y PublicID provienen del
// servicio de medios; Duration/Format/Bytes se copian tal cual de la subida.
type VideoSlide struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	PublicID string  `json:"publicId"`
	Duration float64 `json:"duration"`
	Format   string  `json:"format"`
	Bytes    int64   `json:"bytes"`
	Active   bool    `json:"active"`
	Order    int     `json:"order"`
}

// AdTile celda de la grilla de anuncios.
type AdTile struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Image  string `json:"image"`
	LinkTo string `json:"linkTo"`
	Active bool   `json:"active"`
	Order  int    `json:"order"`
}
