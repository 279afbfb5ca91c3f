package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/cafe-inventario/internal/application/inventory"
	"github.com/jhoicas/cafe-inventario/internal/application/purchasing"
	"github.com/jhoicas/cafe-inventario/internal/application/reporting"
	"github.com/jhoicas/cafe-inventario/internal/application/usecase"
	"github.com/jhoicas/cafe-inventario/internal/infrastructure/memory"
	"github.com/jhoicas/cafe-inventario/internal/interfaces/cli"
	"github.com/jhoicas/cafe-inventario/pkg/config"
	"github.com/jhoicas/cafe-inventario/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("strict_transitions", cfg.Inventory.StrictTransitions).
		Msg("iniciando aplicación")

	categoryRepo := memory.NewCategoryRepository()
	supplierRepo := memory.NewSupplierRepository()
	itemRepo := memory.NewItemRepository()
	orderRepo := memory.NewOrderRepository()
	movementRepo := memory.NewMovementRepository()

	catalogUC := usecase.NewCatalogUseCase(categoryRepo, supplierRepo)
	itemUC := inventory.NewItemUseCase(itemRepo, categoryRepo, supplierRepo, movementRepo)
	orderUC := purchasing.NewOrderUseCase(orderRepo, supplierRepo, itemRepo, movementRepo, cfg.Inventory.StrictTransitions)
	reportUC := reporting.NewReportUseCase(itemRepo, orderRepo, movementRepo)

	if cfg.Inventory.SeedDemo {
		if err := cli.SeedDemoData(catalogUC, itemUC); err != nil {
			log.Fatal().Err(err).Msg("cargar datos de demostración")
		}
		log.Debug().Msg("datos de demostración cargados")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	prompter := cli.NewPrompter(os.Stdin, os.Stdout)
	menu := cli.NewMenu(catalogUC, itemUC, orderUC, reportUC, prompter, os.Stdout, log)

	// El menú bloquea leyendo stdin; una señal termina el proceso sin
	// esperar a que el usuario presione Enter.
	done := make(chan struct{})
	go func() {
		menu.Run()
		close(done)
	}()
	select {
	case <-ctx.Done():
		log.Info().Msg("señal recibida; cerrando")
	case <-done:
	}

	log.Info().Msg("sesión terminada")
}
