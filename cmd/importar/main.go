// importar carga datos iniciales desde planillas CSV exportadas del sistema
// anterior: el stock de arranque del depósito y los movimientos históricos de
// caja. Pasa todo por los casos de uso, así el stock inicial queda asentado
// como movimientos ENTRADA y no como escritura directa.
//
// Uso:
//
//	go run ./cmd/importar -modo insumos [-latin1] stock.csv
//	go run ./cmd/importar -modo movimientos [-latin1] caja.csv
//
// Formato insumos:     nombre;codigo;unidad;stock;stock_minimo;es_herramienta
// Formato movimientos: fecha(2006-01-02);tipo(INGRESO|GASTO);monto;descripcion
//
// -latin1 decodifica planillas exportadas en ISO-8859-1 (Excel viejo).
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/finanzas"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/inventario"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/infrastructure/postgres"
	"github.com/Francoamora/munifinanzas-sub000/pkg/config"
	"github.com/Francoamora/munifinanzas-sub000/pkg/logger"
)

func main() {
	modo := flag.String("modo", "", "insumos | movimientos")
	latin1 := flag.Bool("latin1", false, "decodificar ISO-8859-1")
	flag.Parse()

	if *modo == "" || flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	registros, err := leerCSV(flag.Arg(0), *latin1)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}

	insumoRepo := postgres.NewInsumoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	switch *modo {
	case "insumos":
		insumoUC := inventario.NewInsumoUseCase(insumoRepo,
			postgres.NewMovimientoStockRepository(pool),
			postgres.NewCategoriaInsumoRepository(pool))
		registrarUC := inventario.NewRegistrarMovimientoUseCase(txRunner, insumoRepo)
		err = importarInsumos(ctx, insumoUC, registrarUC, registros, log)
	case "movimientos":
		movimientoUC := finanzas.NewMovimientoUseCase(
			postgres.NewMovimientoRepository(pool),
			postgres.NewCategoriaRepository(pool),
			postgres.NewProveedorRepository(pool),
			postgres.NewBeneficiarioRepository(pool),
			finanzas.CapacidadesPorRol{})
		err = importarMovimientos(movimientoUC, registros, log)
	default:
		log.Fatal().Str("modo", *modo).Msg("modo desconocido")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("importación abortada")
	}
	log.Info().Int("registros", len(registros)).Msg("importación terminada")
}

func leerCSV(path string, latin1 bool) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var src io.Reader = f
	if latin1 {
		src = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	r := csv.NewReader(src)
	r.Comma = ';'
	r.TrimLeadingSpace = true
	return r.ReadAll()
}

// importarInsumos da de alta cada insumo con stock cero y asienta el stock de
// arranque como un movimiento ENTRADA con referencia "Carga inicial".
func importarInsumos(
	ctx context.Context,
	insumoUC *inventario.InsumoUseCase,
	registrarUC *inventario.RegistrarMovimientoUseCase,
	registros [][]string,
	log *logger.Logger,
) error {
	for i, reg := range registros {
		if len(reg) < 6 {
			return fmt.Errorf("fila %d: se esperan 6 columnas, hay %d", i+1, len(reg))
		}
		stock, err := decimal.NewFromString(strings.TrimSpace(reg[3]))
		if err != nil {
			return fmt.Errorf("fila %d: stock inválido %q", i+1, reg[3])
		}
		stockMinimo, err := decimal.NewFromString(strings.TrimSpace(reg[4]))
		if err != nil {
			return fmt.Errorf("fila %d: stock mínimo inválido %q", i+1, reg[4])
		}

		insumo, err := insumoUC.Crear(dto.CrearInsumoRequest{
			Nombre:        strings.TrimSpace(reg[0]),
			Codigo:        strings.TrimSpace(reg[1]),
			Unidad:        strings.ToUpper(strings.TrimSpace(reg[2])),
			StockMinimo:   stockMinimo,
			EsHerramienta: strings.EqualFold(strings.TrimSpace(reg[5]), "si"),
		})
		if err != nil {
			return fmt.Errorf("fila %d: crear insumo: %w", i+1, err)
		}
		if stock.GreaterThan(decimal.Zero) {
			_, err = registrarUC.Registrar(ctx, inventario.MovimientoStockInput{
				InsumoID:   insumo.ID,
				Tipo:       entity.MovStockENTRADA,
				Cantidad:   stock,
				Referencia: "Carga inicial",
			})
			if err != nil {
				return fmt.Errorf("fila %d: stock inicial: %w", i+1, err)
			}
		}
		log.Info().Str("insumo", insumo.Nombre).Str("stock", stock.String()).Msg("insumo importado")
	}
	return nil
}

// importarMovimientos carga asientos históricos ya conciliados: entran
// directamente APROBADOS con rol de staff.
func importarMovimientos(uc *finanzas.MovimientoUseCase, registros [][]string, log *logger.Logger) error {
	for i, reg := range registros {
		if len(reg) < 4 {
			return fmt.Errorf("fila %d: se esperan 4 columnas, hay %d", i+1, len(reg))
		}
		fecha, err := time.Parse("2006-01-02", strings.TrimSpace(reg[0]))
		if err != nil {
			return fmt.Errorf("fila %d: fecha inválida %q", i+1, reg[0])
		}
		monto, err := decimal.NewFromString(strings.TrimSpace(reg[2]))
		if err != nil {
			return fmt.Errorf("fila %d: monto inválido %q", i+1, reg[2])
		}

		mov, err := uc.Crear(dto.CrearMovimientoRequest{
			Tipo:        strings.ToUpper(strings.TrimSpace(reg[1])),
			Fecha:       fecha,
			Monto:       monto,
			Descripcion: strings.TrimSpace(reg[3]),
			Estado:      entity.MovAPROBADO,
		}, "", domain.RolStaffFinanzas)
		if err != nil {
			return fmt.Errorf("fila %d: crear movimiento: %w", i+1, err)
		}
		log.Info().Str("tipo", mov.Tipo).Str("monto", mov.Monto.String()).Msg("movimiento importado")
	}
	return nil
}
