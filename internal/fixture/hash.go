package fixture

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/nischitkumar/Mutable/internal/domain"
)

// HashPlan fingerprints a plan's layout. The seed is not part of the
// hash; the report records it on its own, so reruns of one plan under
// different seeds share a hash.
func HashPlan(plan *domain.Plan) (string, error) {
	data, err := json.Marshal(canonicalizePlan(plan))
	if err != nil {
		return "", err
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

func canonicalizePlan(plan *domain.Plan) map[string]interface{} {
	datasets := make([]map[string]interface{}, len(plan.Datasets))
	for i, ds := range plan.Datasets {
		datasets[i] = map[string]interface{}{
			"kind":  ds.Kind,
			"rows":  ds.Rows,
			"file":  ds.FileName(),
			"table": ds.TableName(),
		}
	}

	result := map[string]interface{}{
		"datasets": datasets,
	}
	if plan.OutDir != "" {
		result["out_dir"] = plan.OutDir
	}

	return result
}
