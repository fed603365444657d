package user

// User 用户实体
// 说明：
// 1. 密码按明文保存和比较（与已有数据文件兼容）
// 2. BirthDate是客户端提交的原始字符串，不做解析
// 3. 领域实体不带json tag，持久化映射在jsonstore层完成
type User struct {
	ID        int
	Name      string
	Email     string
	BirthDate string
	Password  string
}

// NewUser 创建新用户（ID由仓储分配）
func NewUser(name, email, birthDate, password string) *User {
	return &User{
		Name:      name,
		Email:     email,
		BirthDate: birthDate,
		Password:  password,
	}
}

// Matches 邮箱和密码都完全相等（区分大小写）
func (u *User) Matches(email, password string) bool {
	return u.Email == email && u.Password == password
}
