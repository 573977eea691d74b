package dto

// CreateHeroSlideRequest alta de lámina del carrusel principal.
type CreateHeroSlideRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	LinkTo   string `json:"linkTo"`
	Active   bool   `json:"active"`
}

// CreateVideoSlideRequest alta de video. Los campos del medio provienen de la
// respuesta del servicio de subida y se reenvían como campos planos.
type CreateVideoSlideRequest struct {
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	PublicID string  `json:"publicId"`
	Duration float64 `json:"duration"`
	Format   string  `json:"format"`
	Bytes    int64   `json:"bytes"`
	Active   bool    `json:"active"`
}

// CreateAdTileRequest alta de celda de la grilla de anuncios.
type CreateAdTileRequest struct {
	Title  string `json:"title"`
	Image  string `json:"image"`
	LinkTo string `json:"linkTo"`
	Active bool   `json:"active"`
}
