package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"timetracker/models"
	"timetracker/testutil"
)

func TestProjectHierarchyCollectsDescendants(t *testing.T) {
	testutil.SetupTestDB(t)
	unit := testutil.CreateUnit(t, "Engineering")
	customer := testutil.CreateCustomer(t, unit.ID, "Acme")

	root := testutil.CreateProject(t, customer.ID, nil, "Root")
	childA := testutil.CreateProject(t, customer.ID, &root.ID, "Child A")
	childB := testutil.CreateProject(t, customer.ID, &root.ID, "Child B")
	grandchild := testutil.CreateProject(t, customer.ID, &childA.ID, "Grandchild")
	testutil.CreateProject(t, customer.ID, nil, "Unrelated")

	ids, err := ProjectHierarchy(root.ID)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{root.ID, childA.ID, childB.ID, grandchild.ID}, ids)
}

func TestProjectHierarchyChildlessRoot(t *testing.T) {
	testutil.SetupTestDB(t)
	unit := testutil.CreateUnit(t, "Engineering")
	customer := testutil.CreateCustomer(t, unit.ID, "Acme")
	lone := testutil.CreateProject(t, customer.ID, nil, "Lone")

	ids, err := ProjectHierarchy(lone.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{lone.ID}, ids)
}

func TestProjectHierarchyUnknownRoot(t *testing.T) {
	testutil.SetupTestDB(t)

	ids, err := ProjectHierarchy("no-such-id")
	require.NoError(t, err)
	assert.Equal(t, []string{"no-such-id"}, ids)
}

func TestProjectHierarchyTerminatesOnCycle(t *testing.T) {
	testutil.SetupTestDB(t)
	unit := testutil.CreateUnit(t, "Engineering")
	customer := testutil.CreateCustomer(t, unit.ID, "Acme")

	a := testutil.CreateProject(t, customer.ID, nil, "A")
	b := testutil.CreateProject(t, customer.ID, &a.ID, "B")

	// corrupt the forest: A becomes B's child
	require.NoError(t, models.DB.Model(&models.Project{}).
		Where("id = ?", a.ID).
		Update("parent_id", b.ID).Error)

	ids, err := ProjectHierarchy(a.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a.ID, b.ID}, ids)
}

func TestProjectTree(t *testing.T) {
	testutil.SetupTestDB(t)
	unit := testutil.CreateUnit(t, "Engineering")
	customer := testutil.CreateCustomer(t, unit.ID, "Acme")

	root := testutil.CreateProject(t, customer.ID, nil, "Root")
	childB := testutil.CreateProject(t, customer.ID, &root.ID, "Beta")
	childA := testutil.CreateProject(t, customer.ID, &root.ID, "Alpha")
	grandchild := testutil.CreateProject(t, customer.ID, &childA.ID, "Deep")

	tree, err := ProjectTree(root.ID)
	require.NoError(t, err)

	require.Len(t, tree.Children, 2)
	// children are name-ordered at each level
	assert.Equal(t, childA.ID, tree.Children[0].ID)
	assert.Equal(t, childB.ID, tree.Children[1].ID)
	require.Len(t, tree.Children[0].Children, 1)
	assert.Equal(t, grandchild.ID, tree.Children[0].Children[0].ID)
}

func TestProjectTreeUnknownRoot(t *testing.T) {
	testutil.SetupTestDB(t)

	_, err := ProjectTree("no-such-id")
	assert.Error(t, err)
}
