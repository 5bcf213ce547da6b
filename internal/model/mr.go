package model

// MedicalRep is a field sales agent. The store assignment is a plain
// many-to-many set, replaced as a whole on every edit.
type MedicalRep struct {
	BaseModel
	Name   string         `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Salary float64        `gorm:"not null" json:"salary" validate:"required,gt=0"`
	Stores []MedicalStore `gorm:"many2many:mr_stores;" json:"stores,omitempty"`
}

// MedicalRepResponse lists an MR with the names of its assigned stores, the
// shape the admin dashboard consumes.
type MedicalRepResponse struct {
	MedicalRep
	AssignedStores []string `json:"assigned_stores"`
}

func (m *MedicalRep) ToResponse() MedicalRepResponse {
	names := make([]string, len(m.Stores))
	for i, s := range m.Stores {
		names[i] = s.Name
	}
	return MedicalRepResponse{MedicalRep: *m, AssignedStores: names}
}
