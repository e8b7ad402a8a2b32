package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/aims-store/order-service/internal/entities"
	"github.com/aims-store/order-service/internal/handler"
)

const checkoutURL = "http://localhost:8080/checkout"

var titles = []string{
	"Clean Code", "The Go Programming Language", "Dune",
	"Abbey Road (Vinyl)", "Interstellar (DVD)", "The Pragmatic Programmer",
}

func randomItem(productID int64) handler.CartItem {
	return handler.CartItem{
		ProductID: productID,
		Title:     titles[rand.Intn(len(titles))],
		Price:     int64(rand.Intn(50)+1) * 10_000,
		Quantity:  rand.Intn(3) + 1,
		Weight:    float64(rand.Intn(40)+1) / 10,
	}
}

func generateCheckout() handler.CheckoutRequest {
	province := entities.Provinces[rand.Intn(len(entities.Provinces))]

	items := make([]handler.CartItem, 0, 3)
	lines := make([]handler.OrderLine, 0, 3)
	n := rand.Intn(3) + 1
	for i := 0; i < n; i++ {
		item := randomItem(int64(i + 1))
		items = append(items, item)
		lines = append(lines, handler.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	methods := []string{"cod", "momo", "vnpay", "credit_card"}

	return handler.CheckoutRequest{
		Delivery: handler.DeliveryInformation{
			Name:     fmt.Sprintf("Customer %d", rand.Intn(1000)),
			Phone:    fmt.Sprintf("09%08d", rand.Intn(100000000)),
			Email:    fmt.Sprintf("customer%d@example.com", rand.Intn(1000)),
			Address:  fmt.Sprintf("%d Nguyen Trai Street", rand.Intn(200)+1),
			Province: province,
		},
		Items:         items,
		OrderLines:    lines,
		PaymentMethod: methods[rand.Intn(len(methods))],
	}
}

func postCheckout(client *http.Client) {
	body, err := json.Marshal(generateCheckout())
	if err != nil {
		log.Println("marshal failed:", err)
		return
	}

	resp, err := client.Post(checkoutURL, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Println("request failed:", err)
		return
	}
	defer resp.Body.Close()

	var res handler.CheckoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		log.Println(resp.Status)
		return
	}
	log.Println(resp.Status, res.TrackingCode)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := &http.Client{Timeout: 5 * time.Second}
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("stopped")
			return
		case <-ticker.C:
			postCheckout(client)
		}
	}
}
