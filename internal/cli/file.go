package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/isp-cobros/internal/domain/receipt"
)

// loadReceiptFile lee un recibo en JSON o YAML (según la extensión).
// El total pendiente del archivo se ignora y se recalcula con las facturas.
func loadReceiptFile(path string) (receipt.Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return receipt.Data{}, fmt.Errorf("leer %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		// YAML → JSON para reutilizar los decodificadores tolerantes del modelo
		var doc map[string]any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return receipt.Data{}, fmt.Errorf("yaml %s: %w", path, err)
		}
		if raw, err = json.Marshal(doc); err != nil {
			return receipt.Data{}, fmt.Errorf("yaml %s: %w", path, err)
		}
	case ".json", "":
	default:
		return receipt.Data{}, fmt.Errorf("formato no soportado %q (use .json, .yaml o .yml)", filepath.Ext(path))
	}

	var data receipt.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return receipt.Data{}, fmt.Errorf("json %s: %w", path, err)
	}
	return receipt.NewData(data.Receipt, data.Customer, data.Invoices, data.ISP), nil
}
