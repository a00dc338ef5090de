package impl

import (
	"context"
	"testing"

	"mentorhub/internal/domain/entity"
	"mentorhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryService_SearchMentors_ExcludesMentees(t *testing.T) {
	fx := createTestFixtures(t)

	mentor := fx.registerUser(t, "mentor@example.com", "Grace", entity.RoleMentor)
	fx.registerUser(t, "mentee@example.com", "Ada", entity.RoleMentee)

	mentors, err := fx.directory.SearchMentors(context.Background(), &usecase.SearchMentorsInput{})
	require.NoError(t, err)

	require.Len(t, mentors, 1)
	assert.Equal(t, mentor.ID, mentors[0].ID)
}

func TestDirectoryService_SearchMentors_TechStackFilter(t *testing.T) {
	fx := createTestFixtures(t)

	goMentor := fx.registerUser(t, "go@example.com", "Rob", entity.RoleMentor)
	fx.setTechStack(t, goMentor.ID, "Go,Kubernetes")

	javaMentor := fx.registerUser(t, "java@example.com", "James", entity.RoleMentor)
	fx.setTechStack(t, javaMentor.ID, "Java,Spring")

	mentors, err := fx.directory.SearchMentors(context.Background(), &usecase.SearchMentorsInput{
		TechStack: "Go",
	})
	require.NoError(t, err)

	require.Len(t, mentors, 1)
	assert.Equal(t, goMentor.ID, mentors[0].ID)

	// The filter is a case-sensitive substring match on the raw field.
	mentors, err = fx.directory.SearchMentors(context.Background(), &usecase.SearchMentorsInput{
		TechStack: "go",
	})
	require.NoError(t, err)
	assert.Empty(t, mentors)
}

func TestDirectoryService_SearchMentors_SortByName(t *testing.T) {
	fx := createTestFixtures(t)

	fx.registerUser(t, "c@example.com", "charlie", entity.RoleMentor)
	fx.registerUser(t, "a@example.com", "Alice", entity.RoleMentor)
	fx.registerUser(t, "b@example.com", "bob", entity.RoleMentor)

	mentors, err := fx.directory.SearchMentors(context.Background(), &usecase.SearchMentorsInput{
		SortBy: usecase.SortByName,
	})
	require.NoError(t, err)
	require.Len(t, mentors, 3)

	// Sorting ignores case.
	assert.Equal(t, "Alice", mentors[0].Name)
	assert.Equal(t, "bob", mentors[1].Name)
	assert.Equal(t, "charlie", mentors[2].Name)
}

func TestDirectoryService_SearchMentors_SortByTechStack(t *testing.T) {
	fx := createTestFixtures(t)

	rust := fx.registerUser(t, "rust@example.com", "Rae", entity.RoleMentor)
	fx.setTechStack(t, rust.ID, "Rust")

	goLang := fx.registerUser(t, "go@example.com", "Gus", entity.RoleMentor)
	fx.setTechStack(t, goLang.ID, "Go")

	mentors, err := fx.directory.SearchMentors(context.Background(), &usecase.SearchMentorsInput{
		SortBy: usecase.SortByTechStack,
	})
	require.NoError(t, err)
	require.Len(t, mentors, 2)

	assert.Equal(t, goLang.ID, mentors[0].ID)
	assert.Equal(t, rust.ID, mentors[1].ID)
}

func TestDirectoryService_SearchMentors_SkillsSplit(t *testing.T) {
	fx := createTestFixtures(t)

	mentor := fx.registerUser(t, "mentor@example.com", "Grace", entity.RoleMentor)
	fx.setTechStack(t, mentor.ID, "Go,Postgres,Kafka")

	bare := fx.registerUser(t, "bare@example.com", "Newbie", entity.RoleMentor)

	mentors, err := fx.directory.SearchMentors(context.Background(), &usecase.SearchMentorsInput{
		SortBy: usecase.SortByName,
	})
	require.NoError(t, err)
	require.Len(t, mentors, 2)

	assert.Equal(t, []string{"Go", "Postgres", "Kafka"}, mentors[0].Skills)

	// An empty tech stack yields an empty slice, not [""].
	assert.Equal(t, bare.ID, mentors[1].ID)
	assert.Equal(t, []string{}, mentors[1].Skills)
}

func TestDirectoryService_SearchMentors_Empty(t *testing.T) {
	fx := createTestFixtures(t)

	mentors, err := fx.directory.SearchMentors(context.Background(), &usecase.SearchMentorsInput{})
	require.NoError(t, err)
	assert.Empty(t, mentors)
}
