package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"portfoliohub/pkg/models"
)

const defaultBaseURL = "http://localhost:8080"

type tokenData struct {
	Token string `json:"token"`
}

type authResponse struct {
	Token string `json:"token"`
}

type projectListResponse struct {
	Total int                     `json:"total"`
	Items []models.ProjectSummary `json:"items"`
}

func main() {
	global := flag.NewFlagSet("portfoliohub", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	tokenPath := global.String("token", defaultTokenPath(), "token file path")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	cmd := args[0]
	sub := ""
	if len(args) > 1 {
		sub = args[1]
	}

	client := &http.Client{Timeout: 15 * time.Second}

	switch cmd {
	case "auth":
		handleAuth(ctx, client, *baseURL, *tokenPath, sub, args[2:])
	case "project":
		handleProject(ctx, client, *baseURL, sub, args[2:])
	case "media":
		handleMedia(ctx, client, *baseURL, *tokenPath, sub, args[2:])
	case "live":
		handleLive(*baseURL, sub, args[2:])
	case "export":
		handleExport(ctx, client, *baseURL, sub, args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleAuth(ctx context.Context, client *http.Client, baseURL, tokenPath, sub string, args []string) {
	switch sub {
	case "login":
		fs := flag.NewFlagSet("auth login", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)

		if *email == "" || *password == "" {
			log.Fatal("email and password are required")
		}

		payload := map[string]string{"email": *email, "password": *password}
		var resp authResponse
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/editors/login", "", payload, &resp); err != nil {
			log.Fatalf("login failed: %v", err)
		}
		if err := saveToken(tokenPath, resp.Token); err != nil {
			log.Fatalf("save token: %v", err)
		}
		fmt.Println("logged in")
	case "register":
		fs := flag.NewFlagSet("auth register", flag.ExitOnError)
		username := fs.String("username", "", "username")
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)

		if *username == "" || *email == "" || *password == "" {
			log.Fatal("username, email, and password are required")
		}

		payload := map[string]string{"username": *username, "email": *email, "password": *password}
		var resp authResponse
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/editors/register", "", payload, &resp); err != nil {
			log.Fatalf("register failed: %v", err)
		}
		if err := saveToken(tokenPath, resp.Token); err != nil {
			log.Fatalf("save token: %v", err)
		}
		fmt.Println("registered and logged in")
	case "logout":
		if err := clearToken(tokenPath); err != nil {
			log.Fatalf("logout failed: %v", err)
		}
		fmt.Println("logged out")
	default:
		log.Fatal("usage: portfoliohub auth <login|register|logout>")
	}
}

func handleProject(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "list":
		var resp projectListResponse
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/api/projects", "", nil, &resp); err != nil {
			log.Fatalf("list failed: %v", err)
		}
		printJSON(resp)
	case "show":
		fs := flag.NewFlagSet("project show", flag.ExitOnError)
		id := fs.String("id", "", "project id")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("project id is required")
		}

		var resp models.Project
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/api/projects/"+url.PathEscape(*id), "", nil, &resp); err != nil {
			log.Fatalf("show failed: %v", err)
		}
		printJSON(resp)
	case "media":
		fs := flag.NewFlagSet("project media", flag.ExitOnError)
		id := fs.String("id", "", "project id")
		mediaType := fs.String("type", "", "filter by media type (image|gif|video|mp4)")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("project id is required")
		}

		u, err := url.Parse(baseURL + "/api/projects/" + url.PathEscape(*id) + "/media")
		if err != nil {
			log.Fatalf("invalid base url: %v", err)
		}
		if *mediaType != "" {
			qv := u.Query()
			qv.Set("type", *mediaType)
			u.RawQuery = qv.Encode()
		}

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, u.String(), "", nil, &resp); err != nil {
			log.Fatalf("media failed: %v", err)
		}
		printJSON(resp)
	case "validate":
		fs := flag.NewFlagSet("project validate", flag.ExitOnError)
		id := fs.String("id", "", "project id")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("project id is required")
		}

		var resp models.ValidationReport
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/api/projects/"+url.PathEscape(*id)+"/validate", "", nil, &resp); err != nil {
			log.Fatalf("validate failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: portfoliohub project <list|show|media|validate>")
	}
}

func handleMedia(ctx context.Context, client *http.Client, baseURL, tokenPath, sub string, args []string) {
	switch sub {
	case "append":
		token := mustToken(tokenPath)
		fs := flag.NewFlagSet("media append", flag.ExitOnError)
		projectID := fs.String("project", "", "project id")
		sectionID := fs.String("section", "", "section id")
		mediaType := fs.String("type", "image", "media type (image|gif|video|mp4)")
		src := fs.String("src", "", "media source path")
		caption := fs.String("caption", "", "caption")
		_ = fs.Parse(args)
		if *projectID == "" || *sectionID == "" || *src == "" {
			log.Fatal("project, section, and src are required")
		}

		payload := map[string]string{
			"type":    *mediaType,
			"src":     *src,
			"caption": *caption,
		}
		endpoint := baseURL + "/api/projects/" + url.PathEscape(*projectID) +
			"/sections/" + url.PathEscape(*sectionID) + "/media"

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodPost, endpoint, token, payload, &resp); err != nil {
			log.Fatalf("append failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: portfoliohub media append")
	}
}

func handleLive(baseURL, sub string, args []string) {
	switch sub {
	case "tail":
		fs := flag.NewFlagSet("live tail", flag.ExitOnError)
		addr := fs.String("addr", "127.0.0.1:7070", "TCP live feed address")
		pretty := fs.Bool("pretty", true, "pretty print JSON events")
		_ = fs.Parse(args)
		for {
			if err := runLiveTCP(*addr, *pretty); err != nil {
				log.Printf("[live] disconnected: %v", err)
			}
			time.Sleep(1 * time.Second)
		}
	case "subscribe":
		fs := flag.NewFlagSet("live subscribe", flag.ExitOnError)
		wsURL := fs.String("ws", "", "WebSocket URL (defaults to /ws on API host)")
		_ = fs.Parse(args)

		endpoint := *wsURL
		if endpoint == "" {
			var err error
			endpoint, err = websocketURL(baseURL, "/ws")
			if err != nil {
				log.Fatalf("ws url: %v", err)
			}
		}
		if err := runWebSocket(endpoint); err != nil {
			log.Fatalf("subscribe failed: %v", err)
		}
	default:
		log.Fatal("usage: portfoliohub live <tail|subscribe>")
	}
}

func handleExport(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "json":
		fs := flag.NewFlagSet("export json", flag.ExitOnError)
		out := fs.String("out", "data/projects.json", "output JSON path")
		_ = fs.Parse(args)

		items, err := fetchSummaries(ctx, client, baseURL)
		if err != nil {
			log.Fatalf("export json failed: %v", err)
		}
		if err := writeJSON(*out, items); err != nil {
			log.Fatalf("write json failed: %v", err)
		}
		log.Printf("exported %d projects to %s", len(items), *out)
	case "csv":
		fs := flag.NewFlagSet("export csv", flag.ExitOnError)
		out := fs.String("out", "data/projects.csv", "output CSV path")
		_ = fs.Parse(args)

		items, err := fetchSummaries(ctx, client, baseURL)
		if err != nil {
			log.Fatalf("export csv failed: %v", err)
		}
		if err := writeCSV(*out, items); err != nil {
			log.Fatalf("write csv failed: %v", err)
		}
		log.Printf("exported %d projects to %s", len(items), *out)
	default:
		log.Fatal("usage: portfoliohub export <json|csv>")
	}
}

func runLiveTCP(addr string, pretty bool) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()

	log.Printf("[live] connected to %s", addr)
	reader := bufio.NewScanner(conn)
	for reader.Scan() {
		line := reader.Bytes()
		if !pretty {
			fmt.Println(string(line))
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal(line, &obj); err != nil {
			fmt.Println(string(line))
			continue
		}
		b, _ := json.MarshalIndent(obj, "", "  ")
		fmt.Println(string(b))
	}
	if err := reader.Err(); err != nil {
		return err
	}
	return os.ErrClosed
}

func runWebSocket(wsURL string) error {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Printf("[live] connected to %s", wsURL)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		fmt.Println(string(msg))
	}
}

func fetchSummaries(ctx context.Context, client *http.Client, baseURL string) ([]models.ProjectSummary, error) {
	var resp projectListResponse
	if err := doJSON(ctx, client, http.MethodGet, baseURL+"/api/projects", "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func writeJSON(path string, items []models.ProjectSummary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func writeCSV(path string, items []models.ProjectSummary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"id", "title", "subtitle", "thumbnail", "media_count"}); err != nil {
		return err
	}
	for _, item := range items {
		if err := writer.Write([]string{
			item.ID,
			item.Title,
			item.Subtitle,
			item.Thumbnail,
			fmt.Sprintf("%d", item.MediaCount),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func doJSON(ctx context.Context, client *http.Client, method, endpoint, token string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = strings.NewReader(string(b))
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s failed: %s", method, endpoint, strings.TrimSpace(string(data)))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return err
	}
	return nil
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("json: %v", err)
	}
	fmt.Println(string(b))
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./.portfoliohub-token.json"
	}
	return filepath.Join(home, ".portfoliohub", "token.json")
}

func saveToken(path, token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(tokenData{Token: token}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func readToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var td tokenData
	if err := json.Unmarshal(data, &td); err != nil {
		return "", err
	}
	return strings.TrimSpace(td.Token), nil
}

func mustToken(path string) string {
	token, err := readToken(path)
	if err != nil {
		log.Fatalf("token not found, please login: %v", err)
	}
	if token == "" {
		log.Fatal("token empty, please login")
	}
	return token
}

func clearToken(path string) error {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

func websocketURL(baseURL, path string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	return (&url.URL{
		Scheme: scheme,
		Host:   u.Host,
		Path:   path,
	}).String(), nil
}

func printUsage() {
	fmt.Println("portfoliohub <command> [subcommand] [flags]")
	fmt.Println("commands:")
	fmt.Println("  auth login|register|logout")
	fmt.Println("  project list|show|media|validate")
	fmt.Println("  media append")
	fmt.Println("  live tail|subscribe")
	fmt.Println("  export json|csv")
}
