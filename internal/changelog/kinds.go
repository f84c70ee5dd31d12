package changelog

import "fmt"

// Kind identifies the audited business-entity type. It is the polymorphic
// discriminator on stored records and the dispatch key for the diff tables,
// the narration engine, and the channel router. All three consumers index
// [KindCount]-sized tables so that removing a kind fails to compile; the
// cross-registration test in kinds_test.go covers additions.
type Kind int

const (
	KindCompany Kind = iota
	KindSubcompany
	KindEvent
	KindEventNote
	KindEventCad
	KindEventUser
	KindEventSubtask
	KindTask
	KindTaskCategory
	KindSubtask
	KindTaskAttachment
	KindIncident
	KindIncidentType
	KindIncidentTypeTranslation
	KindIncidentZone
	KindIncidentDivision
	KindIncidentMessage
	KindDepartment
	KindDivision
	KindUser
	KindUserCompanyRole
	KindLegalGroup
	KindLegalChat
	KindVendor
	KindVendorPosition
	KindInventory
	KindInventoryZone
	KindReservation
	KindCamper
	KindMessageGroup

	// KindCount is the number of kinds above. Keep it last.
	KindCount int = iota
)

var kindNames = [KindCount]string{
	KindCompany:                 "company",
	KindSubcompany:              "subcompany",
	KindEvent:                   "event",
	KindEventNote:               "event_note",
	KindEventCad:                "event_cad",
	KindEventUser:               "event_user",
	KindEventSubtask:            "event_subtask",
	KindTask:                    "task",
	KindTaskCategory:            "task_category",
	KindSubtask:                 "subtask",
	KindTaskAttachment:          "task_attachment",
	KindIncident:                "incident",
	KindIncidentType:            "incident_type",
	KindIncidentTypeTranslation: "incident_type_translation",
	KindIncidentZone:            "incident_zone",
	KindIncidentDivision:        "incident_division",
	KindIncidentMessage:         "incident_message",
	KindDepartment:              "department",
	KindDivision:                "division",
	KindUser:                    "user",
	KindUserCompanyRole:         "user_company_role",
	KindLegalGroup:              "legal_group",
	KindLegalChat:               "legal_chat",
	KindVendor:                  "vendor",
	KindVendorPosition:          "vendor_position",
	KindInventory:               "inventory",
	KindInventoryZone:           "inventory_zone",
	KindReservation:             "reservation",
	KindCamper:                  "camper",
	KindMessageGroup:            "message_group",
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the registered kinds.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < KindCount
}

// ParseKind maps a wire name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown entity kind %q", name)
}

// AllKinds returns every registered kind, in declaration order. Used by the
// cross-registration tests to sweep the kind-indexed tables.
func AllKinds() []Kind {
	kinds := make([]Kind, KindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}
