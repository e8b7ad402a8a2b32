package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const (
	baseURL   = "http://localhost:8080/orders/tracking/"
	fixedCode = "AIMS-00001-QXZ"
)

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomCode() string {
	letters := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	suffix := make([]rune, 3)
	for i := range suffix {
		suffix[i] = letters[rand.Intn(len(letters))]
	}
	return fmt.Sprintf("AIMS-%05d-%s", rand.Intn(100000), string(suffix))
}

func doRequest() {
	code := fixedCode
	if rand.Intn(5) == 0 {
		code = randomCode()
	}

	url := baseURL + code
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("request failed:", err)
	} else {
		fmt.Println("GET", url, "->", resp.Status)
		resp.Body.Close()
	}
}
