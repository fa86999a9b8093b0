package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/smartstock/stockops-api/internal/console"
	"github.com/smartstock/stockops-api/pkg/config"
	"github.com/smartstock/stockops-api/pkg/logger"
)

// Consola interactiva de traslados bodega → tienda. Un solo hilo de ejecución:
// la única suspensión ocurre en las llamadas al gateway; el feed de
// notificaciones se drena entre prompts.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	gateway := console.NewGateway(cfg.Console.APIBaseURL)
	snapshot := console.NewSnapshot()
	submitter := console.NewSubmitter(gateway, time.Duration(cfg.Console.SubmitTimeoutSeconds)*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var feedCh <-chan []console.Notification
	if token := os.Getenv("CONSOLE_TOKEN"); token != "" {
		feed := console.NewFeed(cfg.Console.APIBaseURL, token, log.Component("feed"))
		if ch, err := feed.Subscribe(ctx); err != nil {
			fmt.Printf("(sin feed de notificaciones: %v)\n", err)
		} else {
			feedCh = ch
		}
	}

	stdin := bufio.NewScanner(os.Stdin)
	fmt.Printf("StockOps, consola de traslados (%s)\n", cfg.Console.APIBaseURL)

	warehouses, err := gateway.ListWarehouses(ctx)
	if err != nil {
		fmt.Printf("No se pudieron listar las bodegas: %v\n", surface(err))
		os.Exit(1)
	}
	if len(warehouses) == 0 {
		fmt.Println("No hay bodegas registradas.")
		os.Exit(0)
	}

	for {
		drainFeed(feedCh)

		fmt.Println("\nBodegas:")
		for i, w := range warehouses {
			fmt.Printf("  %d) %s\n", i+1, w)
		}
		choice := prompt(stdin, "Bodega (número, vacío para salir): ")
		if choice == "" {
			return
		}
		idx, err := strconv.Atoi(choice)
		if err != nil || idx < 1 || idx > len(warehouses) {
			fmt.Println("Selección inválida.")
			continue
		}

		snapshot.SelectWarehouse(warehouses[idx-1])
		snapshot.StartLoading()
		products, err := gateway.ListProducts(ctx, snapshot.Warehouse())
		if err != nil {
			snapshot.SetError(surface(err))
			fmt.Printf("Error cargando productos: %s\n", snapshot.ErrorMessage())
			continue
		}
		snapshot.SetProducts(products)
		if !snapshot.CanSubmit() {
			fmt.Println("La bodega no tiene productos.")
			continue
		}

		fmt.Printf("Productos de %s:\n", snapshot.Warehouse())
		for _, p := range snapshot.Products() {
			fmt.Printf("  - %s (stock: %d)\n", p.Name, p.Stock)
		}

		name := prompt(stdin, "Producto (vacío usa el primero): ")
		if name != "" && !snapshot.SelectProduct(name) {
			fmt.Println("Ese producto no está en la bodega.")
			continue
		}
		selected, _ := snapshot.Selected()

		raw := prompt(stdin, fmt.Sprintf("Cantidad a trasladar de %q: ", selected.Name))
		quantity, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			fmt.Println("Cantidad inválida.")
			continue
		}
		quantity = console.ClampQuantity(quantity)

		result, err := submitter.Submit(ctx, snapshot, quantity)
		if err != nil {
			fmt.Printf("Traslado rechazado: %s\n", surface(err))
			continue
		}
		fmt.Printf("✔ %s (stock restante: %d, tienda: %s)\n", result.Message, result.NewStock, result.TargetStore)
	}
}

func prompt(stdin *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !stdin.Scan() {
		return ""
	}
	return strings.TrimSpace(stdin.Text())
}

// drainFeed muestra el último snapshot de no-leídos sin bloquear el loop.
func drainFeed(ch <-chan []console.Notification) {
	if ch == nil {
		return
	}
	var last []console.Notification
	var seen bool
	for {
		select {
		case snap, open := <-ch:
			if !open {
				return
			}
			last = snap
			seen = true
		default:
			if seen {
				fmt.Printf("🔔 %d mensajes sin leer\n", len(last))
			}
			return
		}
	}
}

// surface traduce la taxonomía de errores al mensaje que ve el usuario.
func surface(err error) string {
	var verr *console.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	var rejection *console.ValidationRejection
	if errors.As(err, &rejection) {
		return rejection.Reason
	}
	var serr *console.ServerError
	if errors.As(err, &serr) {
		return fmt.Sprintf("fallo del servidor (HTTP %d)", serr.Status)
	}
	var nerr *console.NetworkError
	if errors.As(err, &nerr) {
		return "no hay conexión con el backend"
	}
	return err.Error()
}
