package profile

import "encoding/json"

// Profile is display metadata for the reported employee. It is supplied by
// the upstream ESS API (or entered manually for file uploads) and never
// computed.
type Profile struct {
	EmployeeID  string `json:"employee_id"`
	FullName    string `json:"full_name"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
}

// nameField tolerates the upstream API's habit of sending either a plain
// string or an object with a "name" key for designation and department.
type nameField string

func (f *nameField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = nameField(s)
		return nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*f = nameField(obj.Name)
	return nil
}

// UpstreamProfile is the wire shape returned by the ESS profile endpoint.
type UpstreamProfile struct {
	EmployeeID  string    `json:"employeeId"`
	FullName    string    `json:"fullName"`
	Designation nameField `json:"designation"`
	Department  nameField `json:"department"`
}

// ToProfile flattens the upstream shape into the domain record.
func (u UpstreamProfile) ToProfile() Profile {
	return Profile{
		EmployeeID:  u.EmployeeID,
		FullName:    u.FullName,
		Designation: string(u.Designation),
		Department:  string(u.Department),
	}
}
