// Package server hosts the browser tour: one slide per principle, each with
// its class diagram and captured demo output.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"github.com/olehluchkiv/gosolid/internal/diagram"
)

const tourHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>gosolid — SOLID Principles Tour</title>
  <style>
    *, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }

    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      display: flex;
      flex-direction: column;
      align-items: center;
      min-height: 100vh;
      padding: 1rem;
      background-color: #f8f9fa;
      color: #212529;
      transition: background-color 0.3s, color 0.3s;
    }

    @media (prefers-color-scheme: dark) {
      body { background-color: #1a1a2e; color: #e0e0e0; }
      .nav button { background-color: #2d2d44; color: #e0e0e0; border-color: #444; }
      .nav button:hover { background-color: #3d3d5c; }
      .demo-output { background-color: #11111f; color: #9fdc9f; }
      .summary { color: #b8b8c8; }
    }

    h1 { margin: 1rem 0 0.25rem; font-size: 1.4rem; font-weight: 600; }

    .definition { font-style: italic; margin-bottom: 0.5rem; }

    .summary {
      max-width: 52rem;
      margin-bottom: 1rem;
      color: #555;
      text-align: center;
    }

    .nav {
      display: flex;
      gap: 0.5rem;
      margin-bottom: 1rem;
      flex-wrap: wrap;
      justify-content: center;
    }

    .nav button {
      padding: 0.4rem 0.9rem;
      font-size: 0.9rem;
      border: 1px solid #ccc;
      border-radius: 6px;
      background-color: #ffffff;
      color: #212529;
      cursor: pointer;
      transition: background-color 0.15s;
    }

    .nav button:hover { background-color: #e9ecef; }
    .nav button.active { background-color: #2374ab; color: #fff; border-color: #1a5a8a; }

    .diagram-viewport {
      width: 100%;
      max-width: 100vw;
      overflow: auto;
      display: flex;
      justify-content: center;
      padding: 1rem;
    }

    .demo-output {
      width: 100%;
      max-width: 52rem;
      background-color: #212529;
      color: #9fdc9f;
      border-radius: 8px;
      padding: 1rem;
      font-family: "SFMono-Regular", Consolas, "Liberation Mono", Menlo, monospace;
      font-size: 0.85rem;
      white-space: pre;
      overflow-x: auto;
      margin-bottom: 2rem;
    }

    .demo-output:empty { display: none; }

    .hint { font-size: 0.8rem; color: #888; margin-bottom: 1rem; }
  </style>
  <script src="https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.min.js"></script>
</head>
<body>
  <h1 id="slide-title"></h1>
  <div class="definition" id="slide-definition"></div>
  <div class="summary" id="slide-summary"></div>

  <div class="nav" id="nav"></div>
  <div class="hint">use &larr; and &rarr; to move between principles</div>

  <div class="diagram-viewport">
    <div id="diagram-container"></div>
  </div>

  <pre class="demo-output" id="demo-output"></pre>

  <script>
    (function() {
      var slides = {{.SlidesJSON}};
      var current = 0;

      mermaid.initialize({ startOnLoad: false, theme: 'base' });

      var nav = document.getElementById('nav');
      slides.forEach(function(s, i) {
        var btn = document.createElement('button');
        btn.textContent = s.letter ? s.letter : s.title;
        btn.addEventListener('click', function() { showSlide(i); });
        nav.appendChild(btn);
      });

      function showSlide(i) {
        if (i < 0 || i >= slides.length) { return; }
        current = i;

        var s = slides[i];
        document.getElementById('slide-title').textContent = s.title;
        document.getElementById('slide-definition').textContent = s.definition;
        document.getElementById('slide-summary').textContent = s.summary;
        document.getElementById('demo-output').textContent = s.demoOutput;

        Array.prototype.forEach.call(nav.children, function(btn, j) {
          btn.classList.toggle('active', j === i);
        });

        var container = document.getElementById('diagram-container');
        container.innerHTML = '';
        var id = 'mermaid-' + i + '-' + Date.now();
        mermaid.render(id, s.mermaid).then(function(out) {
          container.innerHTML = out.svg;
        }).catch(function(err) {
          container.textContent = 'diagram render error: ' + err;
        });
      }

      document.addEventListener('keydown', function(e) {
        if (e.key === 'ArrowLeft') { showSlide(current - 1); }
        if (e.key === 'ArrowRight') { showSlide(current + 1); }
      });

      showSlide(0);
    })();
  </script>
</body>
</html>
`

// slideEntry is the JSON shape the template's script consumes.
type slideEntry struct {
	Slug       string `json:"slug"`
	Letter     string `json:"letter"`
	Title      string `json:"title"`
	Definition string `json:"definition"`
	Summary    string `json:"summary"`
	Mermaid    string `json:"mermaid"`
	DemoOutput string `json:"demoOutput"`
}

type tourData struct {
	SlidesJSON []slideEntry
}

// ServeTour starts the HTTP server with slide navigation over the tour deck.
// It blocks until the context is cancelled.
func ServeTour(ctx context.Context, slides []diagram.Slide, port int, openBrowser bool, logger *slog.Logger) error {
	tmpl, err := template.New("tour").Parse(tourHTMLTemplate)
	if err != nil {
		return fmt.Errorf("parsing tour HTML template: %w", err)
	}

	entries := make([]slideEntry, len(slides))
	for i, s := range slides {
		entries[i] = slideEntry{
			Slug:       s.Slug,
			Letter:     s.Letter,
			Title:      s.Title,
			Definition: s.Definition,
			Summary:    s.Summary,
			Mermaid:    s.Mermaid,
			DemoOutput: s.DemoOutput,
		}
	}

	data := tourData{SlidesJSON: entries}

	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request received", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			logger.Error("failed to render tour template", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
	})

	mux.HandleFunc("/mermaid.md", func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request received", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		idx := 0
		if q := r.URL.Query().Get("slide"); q != "" {
			if n, err := strconv.Atoi(q); err == nil && n >= 0 && n < len(slides) {
				idx = n
			}
		}
		_, _ = w.Write([]byte(slides[idx].Mermaid))
	})

	addr := fmt.Sprintf(":%d", port)
	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	url := fmt.Sprintf("http://localhost:%d", port)
	logger.Info("starting HTTP server", "addr", url, "slide_count", len(slides))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
		close(errCh)
	}()

	if openBrowser {
		openInBrowser(url, logger)
	}

	// Block until the context is cancelled or the server fails.
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server shutdown error: %w", err)
		}
		return nil
	}
}

// openInBrowser launches the default browser pointed at url. Failures are
// logged, not fatal — the URL is printed either way.
func openInBrowser(url string, logger *slog.Logger) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		logger.Warn("failed to open browser", "error", err, "url", url)
	}
}
