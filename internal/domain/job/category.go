package job

type Category string

const (
	CategoryConstructionLabor       Category = "construction_labor"
	CategoryDomesticHousekeeping    Category = "domestic_housekeeping"
	CategoryManufacturingProduction Category = "manufacturing_production"
	CategoryRetailFoodServices      Category = "retail_food_services"
	CategoryLogisticsDelivery       Category = "logistics_delivery"
	CategorySecurityAuxiliary       Category = "security_auxiliary"
	CategoryAgricultureFarming      Category = "agriculture_farming"
	CategoryWasteManagement         Category = "waste_management"
	CategoryPatientCare             Category = "patient_care"
)

type CategoryInfo struct {
	Value Category
	Label string
}

var categories = []CategoryInfo{
	{Value: CategoryConstructionLabor, Label: "Construction & Labor"},
	{Value: CategoryDomesticHousekeeping, Label: "Domestic & Housekeeping"},
	{Value: CategoryManufacturingProduction, Label: "Manufacturing & Production"},
	{Value: CategoryRetailFoodServices, Label: "Retail & Food Services"},
	{Value: CategoryLogisticsDelivery, Label: "Logistics & Delivery"},
	{Value: CategorySecurityAuxiliary, Label: "Security & Auxiliary"},
	{Value: CategoryAgricultureFarming, Label: "Agriculture & Farming"},
	{Value: CategoryWasteManagement, Label: "Waste Management"},
	{Value: CategoryPatientCare, Label: "Patient Care"},
}

// Categories returns the fixed category list in display order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

func (c Category) Valid() bool {
	for _, it := range categories {
		if it.Value == c {
			return true
		}
	}
	return false
}

func (c Category) Label() string {
	for _, it := range categories {
		if it.Value == c {
			return it.Label
		}
	}
	return string(c)
}
