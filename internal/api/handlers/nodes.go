package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"solarcap-sim/internal/api/models"
	"solarcap-sim/internal/config"
)

// NodeHandler serves the node preset catalogue
type NodeHandler struct {
	nodeDir string
}

// NewNodeHandler creates a new node handler. The preset directory comes from
// NODE_DIR, defaulting to examples/nodes under the working directory.
func NewNodeHandler() *NodeHandler {
	dir := os.Getenv("NODE_DIR")
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = filepath.Join(wd, "examples", "nodes")
		} else {
			dir = "./examples/nodes"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &NodeHandler{nodeDir: dir}
}

// ListNodes handles GET /api/v1/nodes
func (h *NodeHandler) ListNodes(c *gin.Context) {
	nodes := []models.NodeInfo{}

	entries, err := os.ReadDir(h.nodeDir)
	if err != nil {
		log.Printf("NodeHandler: failed to read node directory %s: %v", h.nodeDir, err)
		c.JSON(http.StatusOK, gin.H{"nodes": nodes})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.nodeDir, entry.Name())
		info, err := loadNodeInfo(path, entry.Name())
		if err != nil {
			log.Printf("NodeHandler: skipping %s: %v", path, err)
			continue
		}
		nodes = append(nodes, *info)
	}

	c.JSON(http.StatusOK, gin.H{"nodes": nodes})
}

func loadNodeInfo(path, filename string) (*models.NodeInfo, error) {
	node, err := config.LoadNodeFile(path)
	if err != nil {
		return nil, err
	}

	// Filename without extension doubles as a stable id.
	id := strings.TrimSuffix(filename, ".yaml")
	name := node.Name
	if name == "" {
		name = id
	}

	return &models.NodeInfo{
		ID:   id,
		Name: name,
		File: path,
		Specs: models.NodeSpecs{
			CapacitanceF: node.CapacitanceF,
			OpenCircuitV: node.OpenCircuitV,
			LoadPowerW:   node.LoadPowerW,
		},
	}, nil
}
