package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/application/ports"
	"github.com/tu-usuario/tienda-api/internal/domain/catalog"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

// statsTTL vida de una entrada de estadísticas en caché. Solo expira por TTL,
// no hay invalidación explícita: los conteos toleran 5 minutos de desfase.
const statsTTL = 5 * time.Minute

// StatsUseCase estadísticas del catálogo: conteos por categoría y estado,
// con el agregado "all", opcionalmente acotados por el mismo predicado de
// visibilidad/vendedor/búsqueda del listado.
type StatsUseCase struct {
	repo  repository.ProductRepository
	cache ports.QueryCache // nil = sin caché
}

// NewStatsUseCase construye el caso de uso. cache puede ser nil.
func NewStatsUseCase(repo repository.ProductRepository, cache ports.QueryCache) *StatsUseCase {
	return &StatsUseCase{repo: repo, cache: cache}
}

// Statistics produce el desglose de conteos. Un fallo del caché degrada a
// lectura directa del almacén.
func (uc *StatsUseCase) Statistics(ctx context.Context, caller *catalog.Caller, f catalog.Filtro) (*dto.StatsResponse, error) {
	crit, err := catalog.BuildCriteria(f, caller)
	if err != nil {
		return nil, err
	}

	key := statsCacheKey(crit)
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, key); err != nil {
			log.Warn().Err(err).Msg("caché de estadísticas ilegible, se consulta el almacén")
		} else if raw != nil {
			var stats []catalog.CategoryStats
			if err := json.Unmarshal(raw, &stats); err == nil {
				return &dto.StatsResponse{Statistics: stats}, nil
			}
		}
	}

	groups, err := uc.repo.CountByCategoriaEstado(ctx, crit)
	if err != nil {
		return nil, err
	}
	stats := catalog.BuildStats(groups)

	if uc.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := uc.cache.Set(ctx, key, raw, statsTTL); err != nil {
				log.Warn().Err(err).Msg("no se pudo escribir la caché de estadísticas")
			}
		}
	}
	return &dto.StatsResponse{Statistics: stats}, nil
}

// statsCacheKey clave determinista derivada del predicado.
func statsCacheKey(c catalog.Criteria) string {
	var b strings.Builder
	b.WriteString("stats")
	if c.Categoria != nil {
		b.WriteString("|cat=" + *c.Categoria)
	}
	if c.Vendedor != nil {
		b.WriteString("|ven=" + *c.Vendedor)
	}
	if c.MinPrecio != nil {
		b.WriteString("|min=" + strconv.FormatFloat(*c.MinPrecio, 'f', -1, 64))
	}
	if c.MaxPrecio != nil {
		b.WriteString("|max=" + strconv.FormatFloat(*c.MaxPrecio, 'f', -1, 64))
	}
	if !c.Estados.SinRestriccion() {
		b.WriteString("|est=" + strings.Join(c.Estados.Estados, ","))
	}
	if c.ConBusqueda() {
		b.WriteString("|q=" + strings.Join(c.Terminos, " "))
	}
	return b.String()
}
