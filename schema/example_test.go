package schema_test

import (
	"fmt"

	"github.com/jacentio/propman/schema"
)

func ExampleDefinition_PrimaryKey() {
	def, _ := schema.Default().Lookup(schema.KindPlanService)

	key, _ := def.PrimaryKey("org-1", "plan-1", "ps-9")
	fmt.Println(key.PK)
	fmt.Println(key.SK)
	// Output:
	// ORG#org-1
	// PLAN_SERVICE#plan-1#ps-9
}

func ExampleAccess_Bind() {
	def, _ := schema.Default().Lookup(schema.KindPlanService)
	byPlan, _ := def.Pattern(schema.PatternByPlan)

	partition, sort, _ := byPlan.Bind("org-1", "plan-1")
	fmt.Println(partition, sort.Value, sort.Exact)
	// Output:
	// ORG#org-1 PLAN_SERVICE#plan-1# false
}
