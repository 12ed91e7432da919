package wellbore

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MetaInfo identifies a wellbore and where it is served from.
type MetaInfo struct {
	ID               uuid.UUID `json:"id" binding:"required"`
	HTTPHostName     string    `json:"httpHostName,omitempty"`
	HTTPHostBasePath string    `json:"httpHostBasePath,omitempty"`
	HTTPEndPoint     string    `json:"httpEndPoint,omitempty"`
}

// GaussianProperty is a measured value with its uncertainty.
type GaussianProperty struct {
	Mean              *float64 `json:"mean,omitempty"`
	StandardDeviation *float64 `json:"standardDeviation,omitempty"`
}

// SidetrackType classifies a sidetrack.
type SidetrackType int

const (
	SidetrackUndefined SidetrackType = iota
	SidetrackTechnical
	SidetrackProduction
	SidetrackAppraisal
	SidetrackLateral
)

var sidetrackNames = []string{"Undefined", "Technical", "Production", "Appraisal", "Lateral"}

func (s SidetrackType) String() string {
	if s < 0 || int(s) >= len(sidetrackNames) {
		return fmt.Sprintf("SidetrackType(%d)", int(s))
	}
	return sidetrackNames[s]
}

// MarshalJSON encodes the type by name.
func (s SidetrackType) MarshalJSON() ([]byte, error) {
	if s < 0 || int(s) >= len(sidetrackNames) {
		return nil, fmt.Errorf("invalid sidetrack type %d", int(s))
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts the type name (case-insensitive) or its ordinal.
func (s *SidetrackType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		for i, known := range sidetrackNames {
			if strings.EqualFold(known, name) {
				*s = SidetrackType(i)
				return nil
			}
		}
		return fmt.Errorf("unknown sidetrack type %q", name)
	}

	var ordinal int
	if err := json.Unmarshal(data, &ordinal); err != nil {
		return fmt.Errorf("sidetrack type must be a name or a number: %w", err)
	}
	if ordinal < 0 || ordinal >= len(sidetrackNames) {
		return fmt.Errorf("unknown sidetrack type %d", ordinal)
	}
	*s = SidetrackType(ordinal)
	return nil
}

// WellBore is a drilled or planned hole belonging to a well.
type WellBore struct {
	MetaInfo                 *MetaInfo         `json:"metaInfo" binding:"required"`
	Name                     *string           `json:"name,omitempty"`
	Description              *string           `json:"description,omitempty"`
	CreationDate             *time.Time        `json:"creationDate,omitempty"`
	LastModificationDate     *time.Time        `json:"lastModificationDate,omitempty"`
	WellID                   *uuid.UUID        `json:"wellId,omitempty"`
	RigID                    *uuid.UUID        `json:"rigId,omitempty"`
	IsSidetrack              bool              `json:"isSidetrack"`
	ParentWellBoreID         *uuid.UUID        `json:"parentWellBoreId,omitempty"`
	TieInPointAlongHoleDepth *GaussianProperty `json:"tieInPointAlongHoleDepth,omitempty"`
	SidetrackType            SidetrackType     `json:"sidetrackType"`
}

// ID returns the wellbore id, or uuid.Nil when MetaInfo is missing.
func (w WellBore) ID() uuid.UUID {
	if w.MetaInfo == nil {
		return uuid.Nil
	}
	return w.MetaInfo.ID
}
