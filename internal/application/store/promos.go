package store

import (
	"context"
	"io"

	"github.com/tu-usuario/admin-revendedores/internal/application/dto"
	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
	"github.com/tu-usuario/admin-revendedores/internal/infrastructure/api"
	"github.com/tu-usuario/admin-revendedores/internal/infrastructure/media"
	"github.com/tu-usuario/admin-revendedores/internal/notify"
)

// Promos agrupa las tres colecciones de contenido promocional del sitio:
// carrusel principal, carrusel de videos y grilla de anuncios. Las tres
// comparten el patrón genérico, incluida la lectura pública y el
// reordenamiento; los videos además pasan por el servicio de medios.
type Promos struct {
	Hero   *Collection[entity.HeroSlide]
	Videos *Collection[entity.VideoSlide]
	Ads    *Collection[entity.AdTile]

	uploader *media.Uploader
	notifier notify.Notifier
}

// NewPromos construye los almacenes de contenido promocional.
func NewPromos(apiClient *api.Client, session SessionReader, notifier notify.Notifier, uploader *media.Uploader) *Promos {
	return &Promos{
		Hero: NewCollection[entity.HeroSlide](
			"elemento del carrusel", "/api/promos/hero", apiClient, session, notifier, entity.CatalogPermissions),
		Videos: NewCollection[entity.VideoSlide](
			"video", "/api/promos/videos", apiClient, session, notifier, entity.CatalogPermissions),
		Ads: NewCollection[entity.AdTile](
			"anuncio", "/api/promos/ads", apiClient, session, notifier, entity.CatalogPermissions),
		uploader: uploader,
		notifier: notifier,
	}
}

// CreateVideo sube el archivo al servicio de medios y registra el video en el
// backend con la URL y los metadatos resultantes.
func (p *Promos) CreateVideo(ctx context.Context, title, fileName string, file io.Reader, active bool) (*entity.VideoSlide, error) {
	up, err := p.uploader.UploadVideo(ctx, fileName, file)
	if err != nil {
		p.notifier.Error(err.Error())
		return nil, err
	}

	return p.Videos.Create(ctx, dto.CreateVideoSlideRequest{
		Title:    title,
		URL:      up.URL,
		PublicID: up.PublicID,
		Duration: up.Duration,
		Format:   up.Format,
		Bytes:    up.Bytes,
		Active:   active,
	})
}
