package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"
)

var categories = []string{"tuition", "admission", "examination", "transport", "library", "hostel"}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service address")
	token := flag.String("token", "", "bearer token passed to the backend")
	flag.Parse()

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(*baseURL, *token) })
		}
		wg.Wait()
		time.Sleep(200 * time.Millisecond)
	}
}

func doRequest(baseURL, token string) {
	body := fmt.Sprintf(`{"payerId":"stu-%d","feeCategory":"%s","amount":"%d","taxAmount":"%d"}`,
		rand.Intn(50), categories[rand.Intn(len(categories))], 500+rand.Intn(5000), rand.Intn(100))

	// one request in five uses an invalid amount
	if rand.Intn(5) == 0 {
		body = `{"payerId":"stu-1","feeCategory":"tuition","amount":"-1"}`
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/payment/esewa/sign", strings.NewReader(body))
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("POST /payment/esewa/sign ->", resp.Status)
	resp.Body.Close()
}
