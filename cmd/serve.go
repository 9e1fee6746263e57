package cmd

import (
	"embed"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/minagishl/command-builder/api"
	"github.com/minagishl/command-builder/screen"
)

//go:embed all:web
var webFS embed.FS

var serveFlags struct {
	port string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the builder UI over HTTP",
	Run:   runServer,
}

func runServer(cmd *cobra.Command, args []string) {
	port := serveFlags.port
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}

	manager := screen.NewManager()
	router := api.RegisterRoutes(manager, webFS)

	addr := ":" + port
	log.Printf("command-builder listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func init() {
	serveCmd.Flags().StringVarP(&serveFlags.port, "port", "p", "", "Port to listen on (default $PORT, then 8080)")
}
