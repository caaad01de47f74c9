// Command coursectl is a small terminal client for the course-catalog API.
// It mirrors the browser client's architecture: list always fetches the full
// course collection from the server and derives the filtered, sorted view
// locally with the query package.
//
// Usage:
//
//	coursectl -server http://localhost:8080 list [-q text] [-category a,b] [-level beginner] [-published true|false] [-sort title] [-desc]
//	coursectl -server ... -username user -password user123 create -title T -description D -category C -level beginner -duration 5
//	coursectl -server ... -username user -password user123 delete -id 3
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/iliyamo/course-catalog/internal/model"
	"github.com/iliyamo/course-catalog/internal/query"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func main() {
	server := flag.String("server", "http://localhost:8080", "base URL of the catalog API")
	username := flag.String("username", "", "username for authenticated commands")
	password := flag.String("password", "", "password for authenticated commands")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: coursectl [flags] list|create|delete [command flags]")
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "list":
		err = runList(*server, args[1:])
	case "create":
		err = runCreate(*server, *username, *password, args[1:])
	case "delete":
		err = runDelete(*server, *username, *password, args[1:])
	default:
		err = fmt.Errorf("unknown command %q", args[0])
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "coursectl:", err)
		os.Exit(1)
	}
}

// runList fetches the whole collection and filters/sorts it client side.
func runList(server string, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	q := fs.String("q", "", "substring match against title or description")
	category := fs.String("category", "", "comma-separated category set")
	level := fs.String("level", "", "exact level filter")
	published := fs.String("published", "", "true or false; empty for all")
	sortBy := fs.String("sort", "", "title|category|level|duration|createdAt|updatedAt")
	desc := fs.Bool("desc", false, "sort descending")
	if err := fs.Parse(args); err != nil {
		return err
	}

	courses, err := fetchCourses(server)
	if err != nil {
		return err
	}

	cr := query.Criteria{Text: *q, Level: *level}
	if *category != "" {
		for _, c := range strings.Split(*category, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cr.Categories = append(cr.Categories, c)
			}
		}
	}
	switch *published {
	case "true":
		t := true
		cr.Published = &t
	case "false":
		f := false
		cr.Published = &f
	case "":
	default:
		return fmt.Errorf("invalid -published value %q", *published)
	}

	view := query.Apply(courses, cr, query.SortSpec{Field: *sortBy, Desc: *desc})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tLEVEL\tHOURS\tPUBLISHED")
	for _, c := range view {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%t\n",
			c.ID, c.Title, c.Category, c.Level, c.Duration, c.Published)
	}
	return w.Flush()
}

func runCreate(server, username, password string, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	title := fs.String("title", "", "course title")
	description := fs.String("description", "", "course description")
	category := fs.String("category", "", "course category")
	level := fs.String("level", "beginner", "difficulty level")
	duration := fs.Int("duration", 1, "duration in hours")
	published := fs.Bool("published", false, "publish immediately")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := login(server, username, password)
	if err != nil {
		return err
	}
	body, _ := json.Marshal(map[string]any{
		"title":       *title,
		"description": *description,
		"category":    *category,
		"level":       *level,
		"duration":    *duration,
		"published":   *published,
	})
	env, err := call(http.MethodPost, server+"/api/courses", token, body)
	if err != nil {
		return err
	}
	var c model.Course
	if err := json.Unmarshal(env.Data, &c); err != nil {
		return err
	}
	fmt.Printf("created course %d: %s\n", c.ID, c.Title)
	return nil
}

func runDelete(server, username, password string, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Uint64("id", 0, "course id to delete")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := login(server, username, password)
	if err != nil {
		return err
	}
	env, err := call(http.MethodDelete, fmt.Sprintf("%s/api/courses/%d", server, *id), token, nil)
	if err != nil {
		return err
	}
	fmt.Println(env.Message)
	return nil
}

func fetchCourses(server string) ([]model.Course, error) {
	env, err := call(http.MethodGet, server+"/api/courses", "", nil)
	if err != nil {
		return nil, err
	}
	var courses []model.Course
	if err := json.Unmarshal(env.Data, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func login(server, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("-username and -password are required for this command")
	}
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	env, err := call(http.MethodPost, server+"/api/auth/login", "", body)
	if err != nil {
		return "", err
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", err
	}
	return data.Token, nil
}

// call performs one API request and unwraps the response envelope. A
// non-success envelope becomes an error carrying the server's message.
func call(method, url, token string, body []byte) (envelope, error) {
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return envelope{}, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return envelope{}, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return envelope{}, err
	}
	if !env.Success {
		return env, fmt.Errorf("%s (%s)", env.Error, resp.Status)
	}
	return env, nil
}
