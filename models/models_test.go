package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_Value(t *testing.T) {
	v, err := StringList{"wifi", "parking"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["wifi","parking"]`, v)

	v, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestStringList_Scan(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan([]byte(`["en","si"]`)))
	assert.Equal(t, StringList{"en", "si"}, l)

	require.NoError(t, l.Scan(`["ta"]`))
	assert.Equal(t, StringList{"ta"}, l)

	require.NoError(t, l.Scan(nil))
	assert.Equal(t, StringList{}, l)

	assert.Error(t, l.Scan(42))
	assert.Error(t, l.Scan("not json"))
}

func TestUpdateDoctorInput_Changes(t *testing.T) {
	phone := "0771234567"
	fee := 2500.0
	in := UpdateDoctorInput{PhoneNumber: &phone, ConsultationFee: &fee, Languages: []string{"en"}}

	assert.Equal(t, map[string]interface{}{
		"phonenumber":      phone,
		"consultation_fee": fee,
		"languages":        StringList{"en"},
	}, in.Changes())
	assert.Empty(t, UpdateDoctorInput{}.Changes())
}

func TestUpdateAgentInput_Changes(t *testing.T) {
	company := "Acme"
	active := false
	in := UpdateAgentInput{CompanyName: &company, IsActive: &active}

	assert.Equal(t, map[string]interface{}{
		"company_name": company,
		"is_active":    false,
	}, in.Changes())
}

func TestUpdateHospitalInput_Changes(t *testing.T) {
	status := StatusApproved
	in := UpdateHospitalInput{Status: &status, Facilities: []string{}}

	changes := in.Changes()
	assert.Equal(t, StatusApproved, changes["status"])
	assert.Equal(t, StringList{}, changes["facilities"])
	assert.Len(t, changes, 2)
}
